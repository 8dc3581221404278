package mapping

import (
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/otecpro/otec_erp_backend/internal/models"
)

// ToModelQuote converts a domain Quote to a model Quote header (without items).
func ToModelQuote(d domain.Quote) models.Quote {
	return models.Quote{
		QuoteID:      d.QuoteID,
		Number:       d.Number,
		ClientID:     d.ClientID,
		ContactID:    d.ContactID,
		IssueDate:    d.IssueDate,
		ValidityDays: d.ValidityDays,
		Subtotal:     d.Subtotal,
		Tax:          d.Tax,
		Total:        d.Total,
		Status:       string(d.Status),
		Notes:        d.Notes,
		ApprovalDate: d.ApprovalDate,
		ExecutionID:  d.ExecutionID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToModelQuoteItems converts a domain Quote's lines to model rows, numbering
// them by position.
func ToModelQuoteItems(d domain.Quote) []models.QuoteItem {
	items := make([]models.QuoteItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = models.QuoteItem{
			QuoteID:     d.QuoteID,
			LineNo:      i + 1,
			CourseID:    item.CourseID,
			UnitPrice:   item.UnitPrice,
			Headcount:   item.Headcount,
			DiscountPct: item.DiscountPct,
			Subtotal:    item.Subtotal,
		}
	}
	return items
}

// ToDomainQuote converts a model Quote header plus its item rows to a domain Quote.
func ToDomainQuote(m models.Quote, items []models.QuoteItem) domain.Quote {
	domainItems := make([]domain.QuoteItem, len(items))
	for i, item := range items {
		domainItems[i] = domain.QuoteItem{
			CourseID:    item.CourseID,
			UnitPrice:   item.UnitPrice,
			Headcount:   item.Headcount,
			DiscountPct: item.DiscountPct,
			Subtotal:    item.Subtotal,
		}
	}
	return domain.Quote{
		QuoteID:      m.QuoteID,
		Number:       m.Number,
		ClientID:     m.ClientID,
		ContactID:    m.ContactID,
		IssueDate:    m.IssueDate,
		ValidityDays: m.ValidityDays,
		Items:        domainItems,
		Subtotal:     m.Subtotal,
		Tax:          m.Tax,
		Total:        m.Total,
		Status:       domain.QuoteStatus(m.Status),
		Notes:        m.Notes,
		ApprovalDate: m.ApprovalDate,
		ExecutionID:  m.ExecutionID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

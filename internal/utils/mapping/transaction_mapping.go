package mapping

import (
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/otecpro/otec_erp_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:  d.TransactionID,
		Kind:           string(d.Kind),
		Category:       string(d.Category),
		Subcategory:    d.Subcategory,
		IsDirect:       d.IsDirect,
		ExecutionID:    d.ExecutionID,
		ClientID:       d.ClientID,
		AmountNet:      d.Amount.Net,
		AmountTax:      d.Amount.Tax,
		AmountTotal:    d.Amount.Total,
		DocumentNumber: d.Metadata.DocumentNumber,
		PDFURL:         d.Metadata.PDFURL,
		VehiclePlate:   d.Metadata.VehiclePlate,
		Odometer:       d.Metadata.Odometer,
		InvoiceRef:     d.Metadata.InvoiceRef,
		Description:    d.Metadata.Description,
		IssueDate:      d.Tracking.IssueDate,
		DueDate:        d.Tracking.DueDate,
		PaymentDate:    d.Tracking.PaymentDate,
		Paid:           d.Tracking.Paid,
		Outstanding:    d.Outstanding,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Kind:          domain.TransactionKind(m.Kind),
		Category:      domain.TransactionCategory(m.Category),
		Subcategory:   m.Subcategory,
		IsDirect:      m.IsDirect,
		ExecutionID:   m.ExecutionID,
		ClientID:      m.ClientID,
		Amount: domain.Amount{
			Net:   m.AmountNet,
			Tax:   m.AmountTax,
			Total: m.AmountTotal,
		},
		Metadata: domain.TransactionMetadata{
			DocumentNumber: m.DocumentNumber,
			PDFURL:         m.PDFURL,
			VehiclePlate:   m.VehiclePlate,
			Odometer:       m.Odometer,
			InvoiceRef:     m.InvoiceRef,
			Description:    m.Description,
		},
		Tracking: domain.PaymentTracking{
			IssueDate:   m.IssueDate,
			DueDate:     m.DueDate,
			PaymentDate: m.PaymentDate,
			Paid:        m.Paid,
		},
		Outstanding: m.Outstanding,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts model Transactions to domain Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelAlert converts a domain Alert to a model Alert
func ToModelAlert(d domain.Alert) models.Alert {
	return models.Alert{
		AlertID:     d.AlertID,
		Kind:        string(d.Kind),
		Message:     d.Message,
		Date:        d.Date,
		Priority:    string(d.Priority),
		EntityID:    d.EntityID,
		EntityType:  d.EntityType,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAlert converts a model Alert to a domain Alert
func ToDomainAlert(m models.Alert) domain.Alert {
	return domain.Alert{
		AlertID:     m.AlertID,
		Kind:        domain.AlertKind(m.Kind),
		Message:     m.Message,
		Date:        m.Date,
		Priority:    domain.AlertPriority(m.Priority),
		EntityID:    m.EntityID,
		EntityType:  m.EntityType,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAlertSlice converts model Alerts to domain Alerts.
func ToDomainAlertSlice(ms []models.Alert) []domain.Alert {
	ds := make([]domain.Alert, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAlert(m)
	}
	return ds
}

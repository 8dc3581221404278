package mapping

import (
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/otecpro/otec_erp_backend/internal/models"
)

// ToModelClient converts a domain Client to a model Client (without contacts).
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:     d.ClientID,
		RUT:          d.RUT,
		LegalName:    d.LegalName,
		BusinessLine: d.BusinessLine,
		Address:      d.Address,
		Commune:      d.Commune,
		Region:       d.Region,
		Holding:      d.Holding,
		RegisteredAt: d.RegisteredAt,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client plus its contact rows to a domain Client.
func ToDomainClient(m models.Client, contacts []models.Contact) domain.Client {
	return domain.Client{
		ClientID:     m.ClientID,
		RUT:          m.RUT,
		LegalName:    m.LegalName,
		BusinessLine: m.BusinessLine,
		Address:      m.Address,
		Commune:      m.Commune,
		Region:       m.Region,
		Holding:      m.Holding,
		Contacts:     ToDomainContactSlice(contacts),
		RegisteredAt: m.RegisteredAt,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelContact converts a domain Contact to a model Contact row.
func ToModelContact(d domain.Contact, clientID string) models.Contact {
	return models.Contact{
		ContactID:       d.ContactID,
		ClientID:        clientID,
		Name:            d.Name,
		Role:            d.Role,
		Email:           d.Email,
		Phone:           d.Phone,
		IsDecisionMaker: d.IsDecisionMaker,
		IsCoordinator:   d.IsCoordinator,
	}
}

// ToDomainContact converts a model Contact row to a domain Contact.
func ToDomainContact(m models.Contact) domain.Contact {
	return domain.Contact{
		ContactID:       m.ContactID,
		Name:            m.Name,
		Role:            m.Role,
		Email:           m.Email,
		Phone:           m.Phone,
		IsDecisionMaker: m.IsDecisionMaker,
		IsCoordinator:   m.IsCoordinator,
	}
}

// ToDomainContactSlice converts model Contact rows to domain Contacts.
func ToDomainContactSlice(ms []models.Contact) []domain.Contact {
	ds := make([]domain.Contact, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContact(m)
	}
	return ds
}

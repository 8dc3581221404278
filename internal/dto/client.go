package dto

import (
	"time"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
)

// ContactRequest is one contact within a client create/update payload.
type ContactRequest struct {
	Name            string `json:"name" binding:"required"`
	Role            string `json:"role"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone"`
	IsDecisionMaker bool   `json:"isDecisionMaker"`
	IsCoordinator   bool   `json:"isCoordinator"`
}

// CreateClientRequest defines the payload for creating a client.
type CreateClientRequest struct {
	RUT          string           `json:"rut" binding:"required"`
	LegalName    string           `json:"legalName" binding:"required"`
	BusinessLine string           `json:"businessLine"`
	Address      string           `json:"address"`
	Commune      string           `json:"commune"`
	Region       string           `json:"region"`
	Holding      string           `json:"holding"`
	Contacts     []ContactRequest `json:"contacts" binding:"dive"`
	Notes        string           `json:"notes"`
}

// UpdateClientRequest defines the partial-update payload for a client.
// Nil fields are left untouched.
type UpdateClientRequest struct {
	LegalName    *string           `json:"legalName,omitempty"`
	BusinessLine *string           `json:"businessLine,omitempty"`
	Address      *string           `json:"address,omitempty"`
	Commune      *string           `json:"commune,omitempty"`
	Region       *string           `json:"region,omitempty"`
	Holding      *string           `json:"holding,omitempty"`
	Contacts     *[]ContactRequest `json:"contacts,omitempty" binding:"omitempty,dive"`
	Notes        *string           `json:"notes,omitempty"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID     string           `json:"clientID"`
	RUT          string           `json:"rut"`
	LegalName    string           `json:"legalName"`
	BusinessLine string           `json:"businessLine,omitempty"`
	Address      string           `json:"address,omitempty"`
	Commune      string           `json:"commune,omitempty"`
	Region       string           `json:"region,omitempty"`
	Holding      string           `json:"holding,omitempty"`
	Contacts     []domain.Contact `json:"contacts"`
	RegisteredAt time.Time        `json:"registeredAt"`
	Notes        string           `json:"notes,omitempty"`
}

// ToClientResponse converts a domain.Client to ClientResponse.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:     c.ClientID,
		RUT:          c.RUT,
		LegalName:    c.LegalName,
		BusinessLine: c.BusinessLine,
		Address:      c.Address,
		Commune:      c.Commune,
		Region:       c.Region,
		Holding:      c.Holding,
		Contacts:     c.Contacts,
		RegisteredAt: c.RegisteredAt,
		Notes:        c.Notes,
	}
}

// ToClientResponses converts a slice of domain.Client to responses.
func ToClientResponses(cs []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(cs))
	for i := range cs {
		responses[i] = ToClientResponse(&cs[i])
	}
	return responses
}

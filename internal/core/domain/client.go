package domain

import "time"

// Contact is a named person at a client company.
type Contact struct {
	ContactID       string `json:"contactID"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	IsDecisionMaker bool   `json:"isDecisionMaker"`
	IsCoordinator   bool   `json:"isCoordinator"` // Coordinates course scheduling on the client side
}

// Client represents a customer company that contracts training courses.
type Client struct {
	ClientID     string    `json:"clientID"` // Primary Key (UUID)
	RUT          string    `json:"rut"`      // Chilean tax ID
	LegalName    string    `json:"legalName"`
	BusinessLine string    `json:"businessLine"`
	Address      string    `json:"address"`
	Commune      string    `json:"commune"`
	Region       string    `json:"region"`
	Holding      string    `json:"holding,omitempty"`
	Contacts     []Contact `json:"contacts"`
	RegisteredAt time.Time `json:"registeredAt"`
	Notes        string    `json:"notes,omitempty"`
	AuditFields
}

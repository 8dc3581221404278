package models

import "time"

// Client represents a client company row.
type Client struct {
	ClientID     string    `db:"client_id"`
	RUT          string    `db:"rut"`
	LegalName    string    `db:"legal_name"`
	BusinessLine string    `db:"business_line"`
	Address      string    `db:"address"`
	Commune      string    `db:"commune"`
	Region       string    `db:"region"`
	Holding      string    `db:"holding"`
	RegisteredAt time.Time `db:"registered_at"`
	Notes        string    `db:"notes"`
	AuditFields
}

// Contact represents one contact person row under a client.
type Contact struct {
	ContactID       string `db:"contact_id"`
	ClientID        string `db:"client_id"`
	Name            string `db:"name"`
	Role            string `db:"role"`
	Email           string `db:"email"`
	Phone           string `db:"phone"`
	IsDecisionMaker bool   `db:"is_decision_maker"`
	IsCoordinator   bool   `db:"is_coordinator"`
}

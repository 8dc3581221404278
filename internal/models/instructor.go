package models

import "github.com/shopspring/decimal"

// Instructor represents an instructor row.
type Instructor struct {
	InstructorID   string          `db:"instructor_id"`
	RUT            string          `db:"rut"`
	Name           string          `db:"name"`
	Profession     string          `db:"profession"`
	Specialty      string          `db:"specialty"`
	HourlyRate     decimal.Decimal `db:"hourly_rate"`
	ResumeURL      string          `db:"resume_url"`
	CredentialsURL string          `db:"credentials_url"`
	Email          string          `db:"email"`
	Phone          string          `db:"phone"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}

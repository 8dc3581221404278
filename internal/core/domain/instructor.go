package domain

import "github.com/shopspring/decimal"

// Instructor is a course relator contracted per hour.
type Instructor struct {
	InstructorID   string          `json:"instructorID"` // Primary Key (UUID)
	RUT            string          `json:"rut"`
	Name           string          `json:"name"`
	Profession     string          `json:"profession"`
	Specialty      string          `json:"specialty"`
	HourlyRate     decimal.Decimal `json:"hourlyRate"`
	ResumeURL      string          `json:"resumeURL,omitempty"`
	CredentialsURL string          `json:"credentialsURL,omitempty"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}

package dto

import (
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInstructorRequest defines the payload for creating an instructor.
type CreateInstructorRequest struct {
	RUT            string          `json:"rut" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	Profession     string          `json:"profession"`
	Specialty      string          `json:"specialty"`
	HourlyRate     decimal.Decimal `json:"hourlyRate" binding:"required"`
	ResumeURL      string          `json:"resumeURL"`
	CredentialsURL string          `json:"credentialsURL"`
	Email          string          `json:"email" binding:"omitempty,email"`
	Phone          string          `json:"phone"`
}

// UpdateInstructorRequest defines the partial-update payload for an instructor.
type UpdateInstructorRequest struct {
	Name           *string          `json:"name,omitempty"`
	Profession     *string          `json:"profession,omitempty"`
	Specialty      *string          `json:"specialty,omitempty"`
	HourlyRate     *decimal.Decimal `json:"hourlyRate,omitempty"`
	ResumeURL      *string          `json:"resumeURL,omitempty"`
	CredentialsURL *string          `json:"credentialsURL,omitempty"`
	Email          *string          `json:"email,omitempty" binding:"omitempty,email"`
	Phone          *string          `json:"phone,omitempty"`
	IsActive       *bool            `json:"isActive,omitempty"`
}

// InstructorResponse defines the data returned for an instructor.
type InstructorResponse struct {
	InstructorID   string          `json:"instructorID"`
	RUT            string          `json:"rut"`
	Name           string          `json:"name"`
	Profession     string          `json:"profession,omitempty"`
	Specialty      string          `json:"specialty,omitempty"`
	HourlyRate     decimal.Decimal `json:"hourlyRate"`
	ResumeURL      string          `json:"resumeURL,omitempty"`
	CredentialsURL string          `json:"credentialsURL,omitempty"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	IsActive       bool            `json:"isActive"`
}

// ToInstructorResponse converts a domain.Instructor to InstructorResponse.
func ToInstructorResponse(i *domain.Instructor) InstructorResponse {
	return InstructorResponse{
		InstructorID:   i.InstructorID,
		RUT:            i.RUT,
		Name:           i.Name,
		Profession:     i.Profession,
		Specialty:      i.Specialty,
		HourlyRate:     i.HourlyRate,
		ResumeURL:      i.ResumeURL,
		CredentialsURL: i.CredentialsURL,
		Email:          i.Email,
		Phone:          i.Phone,
		IsActive:       i.IsActive,
	}
}

// ToInstructorResponses converts a slice of domain.Instructor to responses.
func ToInstructorResponses(is []domain.Instructor) []InstructorResponse {
	responses := make([]InstructorResponse, len(is))
	for i := range is {
		responses[i] = ToInstructorResponse(&is[i])
	}
	return responses
}

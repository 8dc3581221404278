package dto

import (
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
)

// CreateCourseRequest defines the payload for creating a catalog course.
type CreateCourseRequest struct {
	InternalCode string `json:"internalCode" binding:"required"`
	SenceCode    string `json:"senceCode"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	TotalHours   int    `json:"totalHours" binding:"required,gt=0"`
	Modality     string `json:"modality" binding:"required,oneof=ON_SITE ELEARNING_SYNC ELEARNING_ASYNC SELF_PACED"`
	RequiresSAG  bool   `json:"requiresSAG"`
	SyllabusURL  string `json:"syllabusURL"`
}

// UpdateCourseRequest defines the partial-update payload for a course.
type UpdateCourseRequest struct {
	SenceCode   *string `json:"senceCode,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	TotalHours  *int    `json:"totalHours,omitempty" binding:"omitempty,gt=0"`
	Modality    *string `json:"modality,omitempty" binding:"omitempty,oneof=ON_SITE ELEARNING_SYNC ELEARNING_ASYNC SELF_PACED"`
	RequiresSAG *bool   `json:"requiresSAG,omitempty"`
	SyllabusURL *string `json:"syllabusURL,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// AddAttachmentRequest defines the payload for attaching file metadata to a course.
type AddAttachmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Kind        string `json:"kind" binding:"required"`
	URL         string `json:"url" binding:"required,url"`
	SizeBytes   int64  `json:"sizeBytes"`
	Description string `json:"description"`
}

// CourseResponse defines the data returned for a course.
type CourseResponse struct {
	CourseID     string              `json:"courseID"`
	InternalCode string              `json:"internalCode"`
	SenceCode    string              `json:"senceCode,omitempty"`
	Name         string              `json:"name"`
	Description  string              `json:"description,omitempty"`
	TotalHours   int                 `json:"totalHours"`
	Modality     string              `json:"modality"`
	RequiresSAG  bool                `json:"requiresSAG"`
	SyllabusURL  string              `json:"syllabusURL,omitempty"`
	IsActive     bool                `json:"isActive"`
	Attachments  []domain.Attachment `json:"attachments"`
}

// ToCourseResponse converts a domain.Course to CourseResponse.
func ToCourseResponse(c *domain.Course) CourseResponse {
	return CourseResponse{
		CourseID:     c.CourseID,
		InternalCode: c.InternalCode,
		SenceCode:    c.SenceCode,
		Name:         c.Name,
		Description:  c.Description,
		TotalHours:   c.TotalHours,
		Modality:     string(c.Modality),
		RequiresSAG:  c.RequiresSAG,
		SyllabusURL:  c.SyllabusURL,
		IsActive:     c.IsActive,
		Attachments:  c.Attachments,
	}
}

// ToCourseResponses converts a slice of domain.Course to responses.
func ToCourseResponses(cs []domain.Course) []CourseResponse {
	responses := make([]CourseResponse, len(cs))
	for i := range cs {
		responses[i] = ToCourseResponse(&cs[i])
	}
	return responses
}

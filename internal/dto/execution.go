package dto

import (
	"time"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
)

// SessionRequest is one scheduled class within an execution config payload.
type SessionRequest struct {
	Date      time.Time `json:"date" binding:"required"`
	StartTime string    `json:"startTime" binding:"required"`
	EndTime   string    `json:"endTime" binding:"required"`
}

// ExecutionConfigRequest defines the delivery configuration payload.
type ExecutionConfigRequest struct {
	Modality    string           `json:"modality" binding:"required,oneof=ON_SITE ELEARNING_SYNC ELEARNING_ASYNC SELF_PACED"`
	TotalHours  int              `json:"totalHours" binding:"gte=0"`
	Sessions    []SessionRequest `json:"sessions" binding:"dive"`
	Location    string           `json:"location"`
	PlatformURL string           `json:"platformURL" binding:"omitempty,url"`
}

// CreateExecutionRequest defines the payload for creating an execution directly
// (as opposed to spawning one from a quote approval).
type CreateExecutionRequest struct {
	CourseID     string                  `json:"courseID" binding:"required"`
	ClientID     string                  `json:"clientID" binding:"required"`
	SenceCode    string                  `json:"senceCode"`
	Config       *ExecutionConfigRequest `json:"config"`
	InstructorID string                  `json:"instructorID"`
	StartDate    *time.Time              `json:"startDate"`
	EndDate      *time.Time              `json:"endDate"`
	Schedule     string                  `json:"schedule"`
	Notes        string                  `json:"notes"`
}

// UpdateExecutionRequest defines the partial-update payload for an execution.
// Status changes go through the transition endpoint, not here.
type UpdateExecutionRequest struct {
	SenceCode    *string                 `json:"senceCode,omitempty"`
	ActionIDs    *[]string               `json:"actionIDs,omitempty"`
	Config       *ExecutionConfigRequest `json:"config,omitempty"`
	InstructorID *string                 `json:"instructorID,omitempty"`
	StartDate    *time.Time              `json:"startDate,omitempty"`
	EndDate      *time.Time              `json:"endDate,omitempty"`
	Schedule     *string                 `json:"schedule,omitempty"`
	Notes        *string                 `json:"notes,omitempty"`
}

// TransitionExecutionRequest defines the payload for a status change.
type TransitionExecutionRequest struct {
	Status string `json:"status" binding:"required,oneof=PLANNED IN_PROGRESS COMPLETED CANCELLED"`
}

// AddParticipantRequest defines the payload for enrolling a participant.
type AddParticipantRequest struct {
	RUT            string `json:"rut" binding:"required"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	EducationLevel string `json:"educationLevel"`
}

// UpdateParticipantRequest defines the partial-update payload for a participant.
type UpdateParticipantRequest struct {
	Email          *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone          *string  `json:"phone,omitempty"`
	EducationLevel *string  `json:"educationLevel,omitempty"`
	AttendancePct  *float64 `json:"attendancePct,omitempty" binding:"omitempty,gte=0,lte=100"`
	FinalGrade     *float64 `json:"finalGrade,omitempty"`
}

// UpdateSAGDocumentRequest defines the payload for filling one compliance
// document slot.
type UpdateSAGDocumentRequest struct {
	URL      string     `json:"url" binding:"omitempty,url"`
	ExamDate *time.Time `json:"examDate"`
	Valid    bool       `json:"valid"`
}

// ExecutionResponse defines the data returned for an execution.
type ExecutionResponse struct {
	ExecutionID      string                 `json:"executionID"`
	CourseID         string                 `json:"courseID"`
	ClientID         string                 `json:"clientID"`
	SenceCode        string                 `json:"senceCode,omitempty"`
	ActionIDs        []string               `json:"actionIDs"`
	Status           string                 `json:"status"`
	Config           domain.ExecutionConfig `json:"config"`
	InstructorID     string                 `json:"instructorID,omitempty"`
	Participants     []domain.Participant   `json:"participants"`
	StartDate        *time.Time             `json:"startDate,omitempty"`
	EndDate          *time.Time             `json:"endDate,omitempty"`
	Schedule         string                 `json:"schedule,omitempty"`
	DirectCostTxnIDs []string               `json:"directCostTxnIDs"`
	QuoteID          *string                `json:"quoteID,omitempty"`
	Notes            string                 `json:"notes,omitempty"`
}

// ToExecutionResponse converts a domain.Execution to ExecutionResponse.
func ToExecutionResponse(e *domain.Execution) ExecutionResponse {
	return ExecutionResponse{
		ExecutionID:      e.ExecutionID,
		CourseID:         e.CourseID,
		ClientID:         e.ClientID,
		SenceCode:        e.SenceCode,
		ActionIDs:        e.ActionIDs,
		Status:           string(e.Status),
		Config:           e.Config,
		InstructorID:     e.InstructorID,
		Participants:     e.Participants,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		Schedule:         e.Schedule,
		DirectCostTxnIDs: e.DirectCostTxnIDs,
		QuoteID:          e.QuoteID,
		Notes:            e.Notes,
	}
}

// ToExecutionResponses converts a slice of domain.Execution to responses.
func ToExecutionResponses(es []domain.Execution) []ExecutionResponse {
	responses := make([]ExecutionResponse, len(es))
	for i := range es {
		responses[i] = ToExecutionResponse(&es[i])
	}
	return responses
}

// ToDomainExecutionConfig converts a config request to its domain form.
func ToDomainExecutionConfig(req *ExecutionConfigRequest) domain.ExecutionConfig {
	if req == nil {
		return domain.ExecutionConfig{Modality: domain.ModalityOnSite, Sessions: []domain.Session{}}
	}
	sessions := make([]domain.Session, len(req.Sessions))
	for i, s := range req.Sessions {
		sessions[i] = domain.Session{Date: s.Date, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return domain.ExecutionConfig{
		Modality:    domain.CourseModality(req.Modality),
		TotalHours:  req.TotalHours,
		Sessions:    sessions,
		Location:    req.Location,
		PlatformURL: req.PlatformURL,
	}
}

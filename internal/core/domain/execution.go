package domain

import "time"

// ExecutionStatus indicates the lifecycle state of a course delivery.
type ExecutionStatus string

const (
	ExecutionPlanned    ExecutionStatus = "PLANNED"
	ExecutionInProgress ExecutionStatus = "IN_PROGRESS"
	ExecutionCompleted  ExecutionStatus = "COMPLETED"
	ExecutionCancelled  ExecutionStatus = "CANCELLED"
)

// executionTransitions is the allowed transition table. Completed and
// Cancelled are terminal.
var executionTransitions = map[ExecutionStatus][]ExecutionStatus{
	ExecutionPlanned:    {ExecutionInProgress, ExecutionCancelled},
	ExecutionInProgress: {ExecutionCompleted, ExecutionCancelled},
}

// CanTransitionTo reports whether a status change from s to target is allowed.
func (s ExecutionStatus) CanTransitionTo(target ExecutionStatus) bool {
	for _, allowed := range executionTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Session is a single scheduled class within an execution.
type Session struct {
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime"` // HH:MM
	EndTime   string    `json:"endTime"`   // HH:MM
}

// ExecutionConfig holds the delivery configuration. An execution spawned from
// a quote approval starts with an empty config pending operational follow-up.
type ExecutionConfig struct {
	Modality    CourseModality `json:"modality"`
	TotalHours  int            `json:"totalHours"`
	Sessions    []Session      `json:"sessions"`
	Location    string         `json:"location,omitempty"`
	PlatformURL string         `json:"platformURL,omitempty"`
}

// Execution is one concrete delivery of a course to a client's participants.
type Execution struct {
	ExecutionID      string          `json:"executionID"` // Primary Key (UUID)
	CourseID         string          `json:"courseID"`
	ClientID         string          `json:"clientID"`
	SenceCode        string          `json:"senceCode,omitempty"`
	ActionIDs        []string        `json:"actionIDs"` // External SENCE action ids
	Status           ExecutionStatus `json:"status"`
	Config           ExecutionConfig `json:"config"`
	InstructorID     string          `json:"instructorID,omitempty"`
	Participants     []Participant   `json:"participants"`
	StartDate        *time.Time      `json:"startDate,omitempty"`
	EndDate          *time.Time      `json:"endDate,omitempty"`
	Schedule         string          `json:"schedule,omitempty"` // Free-text, e.g. "Lu-Vi 09:00-13:00"
	DirectCostTxnIDs []string        `json:"directCostTxnIDs"`   // Ledger transactions tagged as direct costs
	QuoteID          *string         `json:"quoteID,omitempty"`  // Originating quote, when approved from one
	Notes            string          `json:"notes,omitempty"`
	AuditFields
}

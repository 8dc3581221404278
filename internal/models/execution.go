package models

import "time"

// Execution represents a course delivery row. Sessions are stored as a JSONB
// document; the mapping layer handles (de)serialization.
type Execution struct {
	ExecutionID      string     `db:"execution_id"`
	CourseID         string     `db:"course_id"`
	ClientID         string     `db:"client_id"`
	SenceCode        string     `db:"sence_code"`
	ActionIDs        []string   `db:"action_ids"`
	Status           string     `db:"status"`
	Modality         string     `db:"modality"`
	TotalHours       int        `db:"total_hours"`
	Sessions         []byte     `db:"sessions"`
	Location         string     `db:"location"`
	PlatformURL      string     `db:"platform_url"`
	InstructorID     string     `db:"instructor_id"`
	StartDate        *time.Time `db:"start_date"`
	EndDate          *time.Time `db:"end_date"`
	Schedule         string     `db:"schedule"`
	DirectCostTxnIDs []string   `db:"direct_cost_txn_ids"`
	QuoteID          *string    `db:"quote_id"`
	Notes            string     `db:"notes"`
	AuditFields
}

// Participant represents a trainee row under an execution. The three SAG
// document slots are stored together as a JSONB document.
type Participant struct {
	ParticipantID  string   `db:"participant_id"`
	ExecutionID    string   `db:"execution_id"`
	RUT            string   `db:"rut"`
	FirstName      string   `db:"first_name"`
	LastName       string   `db:"last_name"`
	Email          string   `db:"email"`
	Phone          string   `db:"phone"`
	EducationLevel string   `db:"education_level"`
	AttendancePct  float64  `db:"attendance_pct"`
	FinalGrade     *float64 `db:"final_grade"`
	SAGDocuments   []byte   `db:"sag_documents"`
	SAGStatus      string   `db:"sag_status"`
}

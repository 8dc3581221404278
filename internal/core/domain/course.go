package domain

import "time"

// CourseModality indicates how a course is delivered.
type CourseModality string

const (
	ModalityOnSite      CourseModality = "ON_SITE"
	ModalitySyncOnline  CourseModality = "ELEARNING_SYNC"
	ModalityAsyncOnline CourseModality = "ELEARNING_ASYNC"
	ModalitySelfPaced   CourseModality = "SELF_PACED"
)

// Attachment is file metadata attached to a course. Only the URL is stored;
// binary content lives outside this system.
type Attachment struct {
	AttachmentID string    `json:"attachmentID"`
	Name         string    `json:"name"`
	Kind         string    `json:"kind"` // syllabus, manual, presentation, video, document, image, other
	URL          string    `json:"url"`
	SizeBytes    int64     `json:"sizeBytes,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt"`
	Description  string    `json:"description,omitempty"`
}

// Course is a catalog entry for a training course.
type Course struct {
	CourseID     string         `json:"courseID"`            // Primary Key (UUID)
	InternalCode string         `json:"internalCode"`        // OTEC-internal catalog code
	SenceCode    string         `json:"senceCode,omitempty"` // External SENCE registration code
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	TotalHours   int            `json:"totalHours"`
	Modality     CourseModality `json:"modality"`
	RequiresSAG  bool           `json:"requiresSAG"` // Participants need SAG compliance documents
	SyllabusURL  string         `json:"syllabusURL,omitempty"`
	IsActive     bool           `json:"isActive"`
	Attachments  []Attachment   `json:"attachments"`
	AuditFields
}

package models

import "time"

// Course represents a catalog course row.
type Course struct {
	CourseID     string `db:"course_id"`
	InternalCode string `db:"internal_code"`
	SenceCode    string `db:"sence_code"`
	Name         string `db:"name"`
	Description  string `db:"description"`
	TotalHours   int    `db:"total_hours"`
	Modality     string `db:"modality"`
	RequiresSAG  bool   `db:"requires_sag"`
	SyllabusURL  string `db:"syllabus_url"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}

// Attachment represents one file-metadata row under a course.
type Attachment struct {
	AttachmentID string    `db:"attachment_id"`
	CourseID     string    `db:"course_id"`
	Name         string    `db:"name"`
	Kind         string    `db:"kind"`
	URL          string    `db:"url"`
	SizeBytes    int64     `db:"size_bytes"`
	UploadedAt   time.Time `db:"uploaded_at"`
	Description  string    `db:"description"`
}

package mapping

import (
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/otecpro/otec_erp_backend/internal/models"
)

// ToModelCourse converts a domain Course to a model Course (without attachments).
func ToModelCourse(d domain.Course) models.Course {
	return models.Course{
		CourseID:     d.CourseID,
		InternalCode: d.InternalCode,
		SenceCode:    d.SenceCode,
		Name:         d.Name,
		Description:  d.Description,
		TotalHours:   d.TotalHours,
		Modality:     string(d.Modality),
		RequiresSAG:  d.RequiresSAG,
		SyllabusURL:  d.SyllabusURL,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCourse converts a model Course plus its attachment rows to a domain Course.
func ToDomainCourse(m models.Course, attachments []models.Attachment) domain.Course {
	return domain.Course{
		CourseID:     m.CourseID,
		InternalCode: m.InternalCode,
		SenceCode:    m.SenceCode,
		Name:         m.Name,
		Description:  m.Description,
		TotalHours:   m.TotalHours,
		Modality:     domain.CourseModality(m.Modality),
		RequiresSAG:  m.RequiresSAG,
		SyllabusURL:  m.SyllabusURL,
		IsActive:     m.IsActive,
		Attachments:  ToDomainAttachmentSlice(attachments),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAttachment converts a domain Attachment to a model Attachment row.
func ToModelAttachment(d domain.Attachment, courseID string) models.Attachment {
	return models.Attachment{
		AttachmentID: d.AttachmentID,
		CourseID:     courseID,
		Name:         d.Name,
		Kind:         d.Kind,
		URL:          d.URL,
		SizeBytes:    d.SizeBytes,
		UploadedAt:   d.UploadedAt,
		Description:  d.Description,
	}
}

// ToDomainAttachment converts a model Attachment row to a domain Attachment.
func ToDomainAttachment(m models.Attachment) domain.Attachment {
	return domain.Attachment{
		AttachmentID: m.AttachmentID,
		Name:         m.Name,
		Kind:         m.Kind,
		URL:          m.URL,
		SizeBytes:    m.SizeBytes,
		UploadedAt:   m.UploadedAt,
		Description:  m.Description,
	}
}

// ToDomainAttachmentSlice converts model Attachment rows to domain Attachments.
func ToDomainAttachmentSlice(ms []models.Attachment) []domain.Attachment {
	ds := make([]domain.Attachment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAttachment(m)
	}
	return ds
}

// ToModelInstructor converts a domain Instructor to a model Instructor.
func ToModelInstructor(d domain.Instructor) models.Instructor {
	return models.Instructor{
		InstructorID:   d.InstructorID,
		RUT:            d.RUT,
		Name:           d.Name,
		Profession:     d.Profession,
		Specialty:      d.Specialty,
		HourlyRate:     d.HourlyRate,
		ResumeURL:      d.ResumeURL,
		CredentialsURL: d.CredentialsURL,
		Email:          d.Email,
		Phone:          d.Phone,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInstructor converts a model Instructor to a domain Instructor.
func ToDomainInstructor(m models.Instructor) domain.Instructor {
	return domain.Instructor{
		InstructorID:   m.InstructorID,
		RUT:            m.RUT,
		Name:           m.Name,
		Profession:     m.Profession,
		Specialty:      m.Specialty,
		HourlyRate:     m.HourlyRate,
		ResumeURL:      m.ResumeURL,
		CredentialsURL: m.CredentialsURL,
		Email:          m.Email,
		Phone:          m.Phone,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInstructorSlice converts model Instructors to domain Instructors.
func ToDomainInstructorSlice(ms []models.Instructor) []domain.Instructor {
	ds := make([]domain.Instructor, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInstructor(m)
	}
	return ds
}

package services

import (
	"context"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/otecpro/otec_erp_backend/internal/dto"
)

// ClientSvcFacade defines the business operations for clients.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creator string) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updater string) (*domain.Client, error)
	// DeleteClient removes a client; fails with apperrors.ErrConflict while
	// quotes, executions or transactions still reference it.
	DeleteClient(ctx context.Context, clientID string) error
}

// CourseSvcFacade defines the business operations for catalog courses.
type CourseSvcFacade interface {
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest, creator string) (*domain.Course, error)
	GetCourseByID(ctx context.Context, courseID string) (*domain.Course, error)
	ListCourses(ctx context.Context) ([]domain.Course, error)
	UpdateCourse(ctx context.Context, courseID string, req dto.UpdateCourseRequest, updater string) (*domain.Course, error)
	DeleteCourse(ctx context.Context, courseID string) error
	AddAttachment(ctx context.Context, courseID string, req dto.AddAttachmentRequest, creator string) (*domain.Attachment, error)
	RemoveAttachment(ctx context.Context, courseID string, attachmentID string, updater string) error
}

// InstructorSvcFacade defines the business operations for instructors.
type InstructorSvcFacade interface {
	CreateInstructor(ctx context.Context, req dto.CreateInstructorRequest, creator string) (*domain.Instructor, error)
	GetInstructorByID(ctx context.Context, instructorID string) (*domain.Instructor, error)
	ListInstructors(ctx context.Context) ([]domain.Instructor, error)
	UpdateInstructor(ctx context.Context, instructorID string, req dto.UpdateInstructorRequest, updater string) (*domain.Instructor, error)
	DeleteInstructor(ctx context.Context, instructorID string) error
}

package repositories

import (
	"context"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
)

// CourseRepository defines persistence operations for catalog courses.
type CourseRepository interface {
	// SaveCourse inserts or fully replaces a course and its attachments.
	SaveCourse(ctx context.Context, course domain.Course) error
	// FindCourseByID retrieves a course with its attachments. Returns
	// apperrors.ErrNotFound when missing.
	FindCourseByID(ctx context.Context, courseID string) (*domain.Course, error)
	// ListCourses retrieves all courses ordered by internal code.
	ListCourses(ctx context.Context) ([]domain.Course, error)
	// DeleteCourse removes a course. Callers must check references first.
	DeleteCourse(ctx context.Context, courseID string) error
	// IsCourseReferenced reports whether quote items or executions still
	// point at the course.
	IsCourseReferenced(ctx context.Context, courseID string) (bool, error)
}

// InstructorRepository defines persistence operations for instructors.
type InstructorRepository interface {
	SaveInstructor(ctx context.Context, instructor domain.Instructor) error
	FindInstructorByID(ctx context.Context, instructorID string) (*domain.Instructor, error)
	ListInstructors(ctx context.Context) ([]domain.Instructor, error)
	DeleteInstructor(ctx context.Context, instructorID string) error
	// IsInstructorReferenced reports whether executions still point at the
	// instructor.
	IsInstructorReferenced(ctx context.Context, instructorID string) (bool, error)
}

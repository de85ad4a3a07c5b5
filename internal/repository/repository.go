// Package repository defines the storage contract shared by every backend.
// Implementations live in subpackages and are selected at composition time;
// services never know which backend they talk to.
package repository

import (
	"context"

	"github.com/studytrack/studytrack-api/internal/models"
)

// CourseStore persists courses.
type CourseStore interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id int) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) (*models.Course, error)
	Update(ctx context.Context, id int, patch models.CoursePatch) (*models.Course, error)
	Delete(ctx context.Context, id int) error
}

// AssignmentStore persists assignments.
type AssignmentStore interface {
	List(ctx context.Context) ([]models.Assignment, error)
	Get(ctx context.Context, id int) (*models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error)
	Update(ctx context.Context, id int, patch models.AssignmentPatch) (*models.Assignment, error)
	Delete(ctx context.Context, id int) error
}

// GradeStore persists per-course grade records, keyed by course ID.
type GradeStore interface {
	List(ctx context.Context) ([]models.Grade, error)
	GetByCourse(ctx context.Context, courseID int) (*models.Grade, error)
	Create(ctx context.Context, grade *models.Grade) (*models.Grade, error)
	Update(ctx context.Context, courseID int, patch models.GradePatch) (*models.Grade, error)
	Delete(ctx context.Context, courseID int) error
}

// Stores bundles one backend's implementations for wiring.
type Stores struct {
	Courses     CourseStore
	Assignments AssignmentStore
	Grades      GradeStore
}

// Package memory is an in-process storage backend. Every DB instance owns
// its own state, so tests and local development can run isolated copies;
// nothing here is process-global.
package memory

import (
	"sync"

	"github.com/studytrack/studytrack-api/internal/models"
	"github.com/studytrack/studytrack-api/internal/repository"
)

// DB holds all collections behind one lock. Collections are small; every
// read copies so callers can never alias internal state.
type DB struct {
	mu          sync.RWMutex
	courses     map[int]models.Course
	assignments map[int]models.Assignment
	grades      map[int]models.Grade

	nextCourseID     int
	nextAssignmentID int
}

// NewDB creates an empty database.
func NewDB() *DB {
	return &DB{
		courses:          make(map[int]models.Course),
		assignments:      make(map[int]models.Assignment),
		grades:           make(map[int]models.Grade),
		nextCourseID:     1,
		nextAssignmentID: 1,
	}
}

// Stores exposes the database through the shared storage contract.
func (d *DB) Stores() repository.Stores {
	return repository.Stores{
		Courses:     &CourseStore{db: d},
		Assignments: &AssignmentStore{db: d},
		Grades:      &GradeStore{db: d},
	}
}

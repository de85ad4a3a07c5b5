// Package postgres is the self-hosted storage backend, for deployments
// that keep planner data in their own database instead of the hosted
// record store.
package postgres

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/studytrack/studytrack-api/internal/repository"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

// NewStores wires the three entity stores over one connection pool.
func NewStores(db *sqlx.DB) repository.Stores {
	return repository.Stores{
		Courses:     &CourseStore{db: db},
		Assignments: &AssignmentStore{db: db},
		Grades:      &GradeStore{db: db},
	}
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, message)
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

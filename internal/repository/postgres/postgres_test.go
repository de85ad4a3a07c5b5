package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studytrack/studytrack-api/internal/models"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCourseStoreList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := &CourseStore{db: db}

	rows := sqlmock.NewRows([]string{"id", "name", "professor", "credits", "color", "semester", "schedule", "categories"}).
		AddRow(1, "Calculus II", "Dr. Reyes", 4, "#4F46E5", "Fall 2025",
			[]byte(`[{"day":"Mon","time":"09:00"}]`), []byte(`[{"name":"Homework","weight":30}]`))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, professor, credits, color, semester, schedule, categories FROM courses ORDER BY id")).
		WillReturnRows(rows)

	courses, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Calculus II", courses[0].Name)
	require.Len(t, courses[0].Schedule, 1)
	assert.Equal(t, "Mon", courses[0].Schedule[0].Day)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseStoreCreateDefaultsCredits(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := &CourseStore{db: db}

	mock.ExpectQuery("INSERT INTO courses").
		WithArgs("Sociology", "Prof. Okafor", models.DefaultCredits, "#059669", "Fall 2025", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	created, err := store.Create(context.Background(), &models.Course{
		Name: "Sociology", Professor: "Prof. Okafor", Color: "#059669", Semester: "Fall 2025",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, models.DefaultCredits, created.Credits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentStoreUpdatePatchesOnlyProvidedColumns(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := &AssignmentStore{db: db}

	due := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "course_id", "title", "description", "due_date", "priority", "status", "grade", "category"}).
		AddRow(7, 2, "Essay draft", "", due, "high", "completed", nil, "")
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE assignments SET status = $1 WHERE id = $2 RETURNING id, course_id, title, description, due_date, priority, status, grade, category")).
		WithArgs("completed", 7).
		WillReturnRows(rows)

	status := models.StatusCompleted
	updated, err := store.Update(context.Background(), 7, models.AssignmentPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, "Essay draft", updated.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentStoreDeleteMissingReturnsNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := &AssignmentStore{db: db}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM assignments WHERE id = $1")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Delete(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeStoreGetByCourse(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := &GradeStore{db: db}

	rows := sqlmock.NewRows([]string{"course_id", "current_grade", "letter_grade", "breakdown", "assignment_ids"}).
		AddRow(1, 91.5, "A-", []byte(`[{"name":"Homework","weight":30,"grade":94}]`), []byte(`[1,3]`))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT course_id, current_grade, letter_grade, breakdown, assignment_ids FROM grades WHERE course_id = $1")).
		WithArgs(1).
		WillReturnRows(rows)

	grade, err := store.GetByCourse(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 91.5, grade.CurrentGrade)
	assert.Equal(t, []int{1, 3}, grade.AssignmentIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeStoreGetMissingReturnsNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := &GradeStore{db: db}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT course_id, current_grade, letter_grade, breakdown, assignment_ids FROM grades WHERE course_id = $1")).
		WithArgs(9).
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetByCourse(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

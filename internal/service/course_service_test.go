package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studytrack/studytrack-api/internal/dto"
	"github.com/studytrack/studytrack-api/internal/models"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

func newCourseService(t *testing.T) *CourseService {
	t.Helper()
	stores := seededStores()
	return NewCourseService(stores.Courses, stores.Grades, nil, nil)
}

func TestCourseListWithStats(t *testing.T) {
	svc := newCourseService(t)

	list, err := svc.List(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, list.Courses, 3)

	assert.Equal(t, 3, list.Stats.CourseCount)
	assert.Equal(t, 11, list.Stats.TotalCredits)
	assert.Equal(t, 2, list.Stats.GradedCount)
	assert.InDelta(t, 87.85, list.Stats.AverageGrade, 1e-9)

	calculus := list.Courses[0]
	assert.Equal(t, "Calculus II", calculus.Name)
	assert.Equal(t, 91.5, calculus.CurrentGrade)
	assert.Equal(t, "A-", calculus.LetterGrade)

	// The ungraded course carries no letter.
	chemistry := list.Courses[2]
	assert.Zero(t, chemistry.CurrentGrade)
	assert.Empty(t, chemistry.LetterGrade)
}

func TestCourseListSearchMatchesProfessor(t *testing.T) {
	svc := newCourseService(t)

	list, err := svc.List(context.Background(), models.CourseFilter{Search: "OKAFOR"})
	require.NoError(t, err)
	require.Len(t, list.Courses, 1)
	assert.Equal(t, "Intro to Sociology", list.Courses[0].Name)
	assert.Equal(t, 1, list.Stats.CourseCount)
	assert.Equal(t, 3, list.Stats.TotalCredits)
}

func TestCourseListSemesterFilter(t *testing.T) {
	svc := newCourseService(t)

	list, err := svc.List(context.Background(), models.CourseFilter{Semester: "Spring 2026"})
	require.NoError(t, err)
	assert.Empty(t, list.Courses)
	assert.Zero(t, list.Stats.CourseCount)
}

func TestCourseCreateDefaultsColor(t *testing.T) {
	svc := newCourseService(t)

	created, err := svc.Create(context.Background(), dto.CreateCourseRequest{Name: "Linear Algebra"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultColor, created.Color)
	assert.NotZero(t, created.ID)
}

func TestCourseUpdateMissingReturnsNotFound(t *testing.T) {
	svc := newCourseService(t)

	name := "Renamed"
	_, err := svc.Update(context.Background(), 404, dto.UpdateCourseRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studytrack/studytrack-api/internal/models"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

func TestCalendarMonthBucketsByDay(t *testing.T) {
	stores := seededStores()
	svc := NewCalendarService(stores.Assignments, stores.Courses, nil)

	// Fixtures due after the clock fall in September 2025.
	month, err := svc.Month(context.Background(), 2025, 9)
	require.NoError(t, err)
	assert.Equal(t, 2025, month.Year)
	assert.Equal(t, 9, month.Month)

	require.Len(t, month.Days, 2)
	assert.Equal(t, "2025-09-03", month.Days[0].Date)
	require.Len(t, month.Days[0].Entries, 1)
	assert.Equal(t, "Problem Set 4", month.Days[0].Entries[0].Title)
	assert.Equal(t, "Calculus II", month.Days[0].Entries[0].CourseName)
	assert.Equal(t, "2025-09-06", month.Days[1].Date)
}

func TestCalendarMonthPastDueEntries(t *testing.T) {
	stores := seededStores()
	svc := NewCalendarService(stores.Assignments, stores.Courses, nil)

	month, err := svc.Month(context.Background(), 2025, 8)
	require.NoError(t, err)
	require.Len(t, month.Days, 2)
	assert.Equal(t, "2025-08-29", month.Days[0].Date)
	assert.Equal(t, "2025-08-31", month.Days[1].Date)
}

func TestCalendarMonthDanglingCourse(t *testing.T) {
	stores := seededStores()
	_, err := stores.Assignments.Create(context.Background(), &models.Assignment{
		CourseID: 99, Title: "Orphaned", DueDate: time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC),
		Priority: models.PriorityLow, Status: models.StatusPending,
	})
	require.NoError(t, err)
	svc := NewCalendarService(stores.Assignments, stores.Courses, nil)

	month, err := svc.Month(context.Background(), 2025, 9)
	require.NoError(t, err)
	require.Len(t, month.Days, 3)
	assert.Equal(t, unknownCourseName, month.Days[2].Entries[0].CourseName)
}

func TestCalendarMonthValidation(t *testing.T) {
	stores := seededStores()
	svc := NewCalendarService(stores.Assignments, stores.Courses, nil)

	_, err := svc.Month(context.Background(), 2025, 13)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

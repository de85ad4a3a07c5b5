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

func newDashboardService(t *testing.T, cache *CacheService) *DashboardService {
	t.Helper()
	stores := seededStores()
	svc := NewDashboardService(stores.Courses, stores.Assignments, stores.Grades, cache, time.Minute, nil)
	svc.now = func() time.Time { return clock }
	return svc
}

func TestDashboardOverviewComposesSnapshot(t *testing.T) {
	svc := newDashboardService(t, nil)

	overview, hit, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)

	assert.Equal(t, 3, overview.Stats.TotalCourses)
	assert.Equal(t, 4, overview.Stats.TotalAssignments)
	assert.Equal(t, 1, overview.Stats.Completed)
	assert.Equal(t, 3, overview.Stats.Pending)
	assert.Equal(t, 25, overview.Stats.CompletionRate)
	// (3.7*4 + 3.0*3) / 7; the ungraded course contributes nothing.
	assert.Equal(t, "3.40", overview.Stats.GPA)
	assert.Equal(t, 7, overview.Stats.TotalCredits)

	require.Len(t, overview.UpcomingAssignments, 2)
	assert.Equal(t, 1, overview.UpcomingAssignments[0].ID)
	assert.Equal(t, 2, overview.UpcomingAssignments[1].ID)
	assert.Equal(t, "Calculus II", overview.UpcomingAssignments[0].CourseName)

	require.Len(t, overview.RecentlyCompleted, 1)
	assert.Equal(t, 3, overview.RecentlyCompleted[0].ID)

	// The overdue lab report is not "upcoming", so its course gets no tile.
	require.Len(t, overview.Courses, 2)
	assert.Equal(t, "Calculus II", overview.Courses[0].Name)
	assert.Equal(t, 1, overview.Courses[0].UpcomingCount)
	assert.Equal(t, "A-", overview.Courses[0].LetterGrade)
}

func TestDashboardUpcomingWindowEdgesAreExclusive(t *testing.T) {
	stores := seededStores()
	_, err := stores.Assignments.Create(context.Background(), &models.Assignment{
		CourseID: 1, Title: "due this instant", DueDate: clock, Status: models.StatusPending,
	})
	require.NoError(t, err)
	_, err = stores.Assignments.Create(context.Background(), &models.Assignment{
		CourseID: 1, Title: "due at the horizon", DueDate: clock.Add(upcomingWindow), Status: models.StatusPending,
	})
	require.NoError(t, err)

	svc := NewDashboardService(stores.Courses, stores.Assignments, stores.Grades, nil, time.Minute, nil)
	svc.now = func() time.Time { return clock }

	overview, _, err := svc.Overview(context.Background())
	require.NoError(t, err)

	require.Len(t, overview.UpcomingAssignments, 2)
	for _, a := range overview.UpcomingAssignments {
		assert.NotEqual(t, "due this instant", a.Title)
		assert.NotEqual(t, "due at the horizon", a.Title)
	}
}

func TestDashboardOverviewServedFromCache(t *testing.T) {
	repo := newFakeCacheRepo()
	cache := NewCacheService(repo, nil, time.Minute, nil)
	svc := newDashboardService(t, cache)

	_, hit, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, repo.sets)

	cached, hit, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "3.40", cached.Stats.GPA)
	assert.Equal(t, 1, repo.sets)
}

func TestDashboardOverviewAbortsWhenAnyFetchFails(t *testing.T) {
	stores := seededStores()
	svc := NewDashboardService(stores.Courses, stores.Assignments, &failingGrades{err: unavailable()}, nil, time.Minute, nil)
	svc.now = func() time.Time { return clock }

	_, _, err := svc.Overview(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnavailable.Code, appErrors.FromError(err).Code)
}

package service

import (
	"context"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/studytrack/studytrack-api/internal/dto"
	"github.com/studytrack/studytrack-api/internal/models"
	"github.com/studytrack/studytrack-api/internal/repository"
)

const dashboardCacheKey = "page:dashboard"

// Dashboard list limits.
const (
	upcomingWindow      = 7 * 24 * time.Hour
	upcomingLimit       = 5
	recentLimit         = 3
	dashboardCourseSlot = 3
)

// DashboardService composes the dashboard payload from all three
// collections.
type DashboardService struct {
	courses     repository.CourseStore
	assignments repository.AssignmentStore
	grades      repository.GradeStore
	cache       *CacheService
	logger      *zap.Logger
	cacheTTL    time.Duration
	now         func() time.Time
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(courses repository.CourseStore, assignments repository.AssignmentStore, grades repository.GradeStore, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &DashboardService{
		courses:     courses,
		assignments: assignments,
		grades:      grades,
		cache:       cache,
		logger:      logger,
		cacheTTL:    cacheTTL,
		now:         time.Now,
	}
}

// Overview returns the composed dashboard. Any backend failure aborts the
// whole load; the page renders from one consistent snapshot or not at all.
// The second return reports a cache hit.
func (s *DashboardService) Overview(ctx context.Context) (*dto.DashboardResponse, bool, error) {
	var cached dto.DashboardResponse
	if hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	var (
		courses     []models.Course
		assignments []models.Assignment
		grades      []models.Grade
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = s.courses.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = s.assignments.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		grades, err = s.grades.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	now := s.now()
	byID := coursesByID(courses)
	byCourse := models.GradesByCourse(grades)

	response := &dto.DashboardResponse{
		Stats:               s.buildStats(courses, assignments, byCourse),
		UpcomingAssignments: s.buildUpcoming(assignments, byID, now),
		RecentlyCompleted:   s.buildRecentlyCompleted(assignments, byID, now),
	}
	response.Courses = s.buildCourseTiles(courses, assignments, byCourse, now)

	if err := s.cache.Set(ctx, dashboardCacheKey, response, s.cacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
	return response, false, nil
}

func (s *DashboardService) buildStats(courses []models.Course, assignments []models.Assignment, byCourse map[int]models.Grade) dto.DashboardStats {
	stats := dto.DashboardStats{
		TotalCourses:     len(courses),
		TotalAssignments: len(assignments),
	}
	for _, a := range assignments {
		if a.Status == models.StatusCompleted {
			stats.Completed++
		} else {
			stats.Pending++
		}
	}
	if stats.TotalAssignments > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.TotalAssignments) * 100))
	}
	stats.GPA, stats.TotalCredits = ComputeGPA(courses, byCourse)
	return stats
}

func (s *DashboardService) buildUpcoming(assignments []models.Assignment, byID map[int]models.Course, now time.Time) []dto.AssignmentView {
	horizon := now.Add(upcomingWindow)
	upcoming := make([]models.Assignment, 0, upcomingLimit)
	for _, a := range assignments {
		if a.Status != models.StatusPending {
			continue
		}
		// Both window edges are exclusive: work due this instant or at
		// exactly the horizon is not "upcoming".
		if !a.DueDate.After(now) || !a.DueDate.Before(horizon) {
			continue
		}
		upcoming = append(upcoming, a)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}

	views := make([]dto.AssignmentView, 0, len(upcoming))
	for _, a := range upcoming {
		views = append(views, decorateAssignment(a, byID, now))
	}
	return views
}

func (s *DashboardService) buildRecentlyCompleted(assignments []models.Assignment, byID map[int]models.Course, now time.Time) []dto.AssignmentView {
	completed := make([]models.Assignment, 0, recentLimit)
	for _, a := range assignments {
		if a.Status == models.StatusCompleted {
			completed = append(completed, a)
		}
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].DueDate.After(completed[j].DueDate)
	})
	if len(completed) > recentLimit {
		completed = completed[:recentLimit]
	}

	views := make([]dto.AssignmentView, 0, len(completed))
	for _, a := range completed {
		views = append(views, decorateAssignment(a, byID, now))
	}
	return views
}

func (s *DashboardService) buildCourseTiles(courses []models.Course, assignments []models.Assignment, byCourse map[int]models.Grade, now time.Time) []dto.DashboardCourse {
	horizon := now.Add(upcomingWindow)
	upcomingByCourse := make(map[int]int)
	for _, a := range assignments {
		if a.Status != models.StatusPending || !a.DueDate.After(now) || !a.DueDate.Before(horizon) {
			continue
		}
		upcomingByCourse[a.CourseID]++
	}

	tiles := []dto.DashboardCourse{}
	for _, course := range courses {
		count := upcomingByCourse[course.ID]
		if count == 0 {
			continue
		}
		tile := dto.DashboardCourse{
			CourseID:      course.ID,
			Name:          course.Name,
			Color:         course.Color,
			UpcomingCount: count,
		}
		if tile.Color == "" {
			tile.Color = models.DefaultColor
		}
		if grade, ok := byCourse[course.ID]; ok && grade.Graded() {
			tile.CurrentGrade = grade.CurrentGrade
			tile.LetterGrade, _ = LetterGrade(grade.CurrentGrade)
		}
		tiles = append(tiles, tile)
		if len(tiles) == dashboardCourseSlot {
			break
		}
	}
	return tiles
}

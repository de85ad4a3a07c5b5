package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/studytrack/studytrack-api/internal/dto"
	"github.com/studytrack/studytrack-api/internal/models"
	"github.com/studytrack/studytrack-api/internal/repository"
)

// Rendered when an assignment references a deleted course.
const unknownCourseName = "Unknown Course"

// AssignmentService owns the assignment listing pipeline and CRUD.
type AssignmentService struct {
	assignments repository.AssignmentStore
	courses     repository.CourseStore
	cache       *CacheService
	logger      *zap.Logger
	now         func() time.Time
}

// NewAssignmentService constructs an AssignmentService.
func NewAssignmentService(assignments repository.AssignmentStore, courses repository.CourseStore, cache *CacheService, logger *zap.Logger) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{
		assignments: assignments,
		courses:     courses,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
	}
}

func coursesByID(courses []models.Course) map[int]models.Course {
	byID := make(map[int]models.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}
	return byID
}

func decorateAssignment(a models.Assignment, courses map[int]models.Course, now time.Time) dto.AssignmentView {
	view := dto.AssignmentView{
		Assignment:    a,
		CourseName:    unknownCourseName,
		CourseColor:   models.DefaultColor,
		StatusVariant: StatusVariant(a, now),
		StatusLabel:   StatusLabel(a, now),
		Countdown:     Countdown(a.DueDate, now),
	}
	if course, ok := courses[a.CourseID]; ok {
		view.CourseName = course.Name
		if course.Color != "" {
			view.CourseColor = course.Color
		}
	}
	return view
}

func assignmentStats(assignments []models.Assignment, now time.Time) dto.AssignmentStats {
	stats := dto.AssignmentStats{Total: len(assignments)}
	for _, a := range assignments {
		switch {
		case a.Status == models.StatusCompleted:
			stats.Completed++
		case a.DueDate.Before(now):
			stats.Overdue++
		default:
			stats.Pending++
		}
	}
	return stats
}

// List runs the full listing pipeline: concurrent fetch, filter, sort and
// per-row decoration. Stats cover the unfiltered set so the cards do not
// shrink while searching.
func (s *AssignmentService) List(ctx context.Context, filter models.AssignmentFilter) (*dto.AssignmentListResponse, error) {
	var (
		assignments []models.Assignment
		courses     []models.Course
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assignments, err = s.assignments.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		courses, err = s.courses.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	byID := coursesByID(courses)

	filtered := FilterAssignments(assignments, filter, now)
	SortAssignments(filtered)

	views := make([]dto.AssignmentView, 0, len(filtered))
	for _, a := range filtered {
		views = append(views, decorateAssignment(a, byID, now))
	}

	return &dto.AssignmentListResponse{
		Assignments: views,
		Stats:       assignmentStats(assignments, now),
	}, nil
}

// Get returns a single assignment.
func (s *AssignmentService) Get(ctx context.Context, id int) (*models.Assignment, error) {
	return s.assignments.Get(ctx, id)
}

// Create registers a new assignment with defaulted priority and status.
func (s *AssignmentService) Create(ctx context.Context, req dto.CreateAssignmentRequest) (*models.Assignment, error) {
	assignment := &models.Assignment{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    models.AssignmentPriority(req.Priority),
		Status:      models.StatusPending,
		Category:    req.Category,
	}
	if assignment.Priority == "" {
		assignment.Priority = models.PriorityMedium
	}
	created, err := s.assignments.Create(ctx, assignment)
	if err != nil {
		return nil, err
	}
	s.invalidatePages(ctx)
	return created, nil
}

// Update applies a partial assignment update.
func (s *AssignmentService) Update(ctx context.Context, id int, req dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	patch := models.AssignmentPatch{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Grade:       req.Grade,
		Category:    req.Category,
	}
	if req.Priority != nil {
		priority := models.AssignmentPriority(*req.Priority)
		patch.Priority = &priority
	}
	if req.Status != nil {
		status := models.AssignmentStatus(*req.Status)
		patch.Status = &status
	}
	updated, err := s.assignments.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidatePages(ctx)
	return updated, nil
}

// UpdateStatus toggles completion. Writing the current status again is a
// no-op at the store level, which makes double submissions harmless.
func (s *AssignmentService) UpdateStatus(ctx context.Context, id int, status models.AssignmentStatus) (*models.Assignment, error) {
	updated, err := s.assignments.Update(ctx, id, models.AssignmentPatch{Status: &status})
	if err != nil {
		return nil, err
	}
	s.invalidatePages(ctx)
	return updated, nil
}

// Delete removes an assignment.
func (s *AssignmentService) Delete(ctx context.Context, id int) error {
	if err := s.assignments.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidatePages(ctx)
	return nil
}

func (s *AssignmentService) invalidatePages(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, pageCachePattern); err != nil {
		s.logger.Warn("page cache invalidation failed", zap.Error(err))
	}
}

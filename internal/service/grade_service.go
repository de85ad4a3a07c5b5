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

const gradesCacheKey = "page:grades"

// GradeService composes the grades page and owns grade record CRUD.
type GradeService struct {
	courses     repository.CourseStore
	assignments repository.AssignmentStore
	grades      repository.GradeStore
	cache       *CacheService
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewGradeService constructs a GradeService.
func NewGradeService(courses repository.CourseStore, assignments repository.AssignmentStore, grades repository.GradeStore, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *GradeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &GradeService{
		courses:     courses,
		assignments: assignments,
		grades:      grades,
		cache:       cache,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Overview composes the grades page: overall summary plus one row per
// course that has a grade record. The second return reports a cache hit.
func (s *GradeService) Overview(ctx context.Context) (*dto.GradesOverviewResponse, bool, error) {
	var cached dto.GradesOverviewResponse
	if hit, err := s.cache.Get(ctx, gradesCacheKey, &cached); err == nil && hit {
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

	byCourse := models.GradesByCourse(grades)

	completed := make(map[int]int, len(courses))
	total := make(map[int]int, len(courses))
	for _, a := range assignments {
		total[a.CourseID]++
		if a.Status == models.StatusCompleted {
			completed[a.CourseID]++
		}
	}

	response := &dto.GradesOverviewResponse{Courses: []dto.CourseGradeRow{}}
	for _, course := range courses {
		grade, ok := byCourse[course.ID]
		if !ok {
			continue
		}
		row := dto.CourseGradeRow{
			CourseID:             course.ID,
			CourseName:           course.Name,
			Credits:              course.CreditHours(),
			CurrentGrade:         grade.CurrentGrade,
			Categories:           grade.Categories,
			AssignmentsCompleted: completed[course.ID],
			AssignmentsTotal:     total[course.ID],
		}
		if grade.Graded() {
			row.LetterGrade, row.ColorHint = LetterGrade(grade.CurrentGrade)
			response.Summary.GradedCourses++
		} else {
			row.LetterGrade = "N/A"
		}
		response.Courses = append(response.Courses, row)
	}

	response.Summary.GPA, response.Summary.TotalCredits = ComputeGPA(courses, byCourse)
	response.Summary.AverageGrade = AverageGrade(byCourse)

	if err := s.cache.Set(ctx, gradesCacheKey, response, s.cacheTTL); err != nil {
		s.logger.Warn("grades cache write failed", zap.Error(err))
	}
	return response, false, nil
}

// GetByCourse returns the grade record for one course.
func (s *GradeService) GetByCourse(ctx context.Context, courseID int) (*models.Grade, error) {
	return s.grades.GetByCourse(ctx, courseID)
}

// Create registers the grade record for a course. The letter grade is
// derived, never accepted from the client.
func (s *GradeService) Create(ctx context.Context, req dto.CreateGradeRequest) (*models.Grade, error) {
	grade := &models.Grade{
		CourseID:      req.CourseID,
		CurrentGrade:  req.CurrentGrade,
		Categories:    req.Categories,
		AssignmentIDs: req.AssignmentIDs,
	}
	if grade.Graded() {
		grade.LetterGrade, _ = LetterGrade(grade.CurrentGrade)
	}
	created, err := s.grades.Create(ctx, grade)
	if err != nil {
		return nil, err
	}
	s.invalidatePages(ctx)
	return created, nil
}

// Update applies a partial grade update and rederives the letter grade
// whenever the percentage moves.
func (s *GradeService) Update(ctx context.Context, courseID int, req dto.UpdateGradeRequest) (*models.Grade, error) {
	patch := models.GradePatch{
		CurrentGrade:  req.CurrentGrade,
		Categories:    req.Categories,
		AssignmentIDs: req.AssignmentIDs,
	}
	if req.CurrentGrade != nil {
		letter := ""
		if *req.CurrentGrade > 0 {
			letter, _ = LetterGrade(*req.CurrentGrade)
		}
		patch.LetterGrade = &letter
	}
	updated, err := s.grades.Update(ctx, courseID, patch)
	if err != nil {
		return nil, err
	}
	s.invalidatePages(ctx)
	return updated, nil
}

// Delete removes a course's grade record.
func (s *GradeService) Delete(ctx context.Context, courseID int) error {
	if err := s.grades.Delete(ctx, courseID); err != nil {
		return err
	}
	s.invalidatePages(ctx)
	return nil
}

func (s *GradeService) invalidatePages(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, pageCachePattern); err != nil {
		s.logger.Warn("page cache invalidation failed", zap.Error(err))
	}
}

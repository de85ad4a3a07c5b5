package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/studytrack/studytrack-api/internal/dto"
	"github.com/studytrack/studytrack-api/internal/models"
	"github.com/studytrack/studytrack-api/internal/repository"
)

// pageCachePattern matches every cached page payload. Any mutation
// invalidates the lot; payloads are cheap to recompute.
const pageCachePattern = "page:*"

// CourseService owns course listing, filtering and CRUD.
type CourseService struct {
	courses repository.CourseStore
	grades  repository.GradeStore
	cache   *CacheService
	logger  *zap.Logger
}

// NewCourseService constructs a CourseService.
func NewCourseService(courses repository.CourseStore, grades repository.GradeStore, cache *CacheService, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{courses: courses, grades: grades, cache: cache, logger: logger}
}

func matchesCourse(c models.Course, filter models.CourseFilter) bool {
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		name := strings.ToLower(c.Name)
		professor := strings.ToLower(c.Professor)
		if !strings.Contains(name, search) && !strings.Contains(professor, search) {
			return false
		}
	}
	if filter.Semester != "" && filter.Semester != models.FilterAll && c.Semester != filter.Semester {
		return false
	}
	return true
}

// List returns the filtered course listing with semester stats and each
// course's current grade attached.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) (*dto.CourseListResponse, error) {
	var (
		courses []models.Course
		grades  []models.Grade
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = s.courses.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		grades, err = s.grades.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byCourse := models.GradesByCourse(grades)

	response := &dto.CourseListResponse{Courses: []dto.CourseView{}}
	gradeSum := 0.0
	for _, course := range courses {
		if !matchesCourse(course, filter) {
			continue
		}
		view := dto.CourseView{Course: course}
		if grade, ok := byCourse[course.ID]; ok && grade.Graded() {
			view.CurrentGrade = grade.CurrentGrade
			view.LetterGrade, _ = LetterGrade(grade.CurrentGrade)
			response.Stats.GradedCount++
			gradeSum += grade.CurrentGrade
		}
		response.Courses = append(response.Courses, view)
		response.Stats.CourseCount++
		response.Stats.TotalCredits += course.CreditHours()
	}
	if response.Stats.GradedCount > 0 {
		response.Stats.AverageGrade = gradeSum / float64(response.Stats.GradedCount)
	}
	return response, nil
}

// Get returns a single course.
func (s *CourseService) Get(ctx context.Context, id int) (*models.Course, error) {
	return s.courses.Get(ctx, id)
}

// Create registers a new course. Credits zero falls back to the default at
// read time, so it is stored as submitted.
func (s *CourseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:       req.Name,
		Professor:  req.Professor,
		Credits:    req.Credits,
		Color:      req.Color,
		Semester:   req.Semester,
		Schedule:   req.Schedule,
		Categories: req.Categories,
	}
	if course.Color == "" {
		course.Color = models.DefaultColor
	}
	created, err := s.courses.Create(ctx, course)
	if err != nil {
		return nil, err
	}
	s.invalidatePages(ctx)
	return created, nil
}

// Update applies a partial course update.
func (s *CourseService) Update(ctx context.Context, id int, req dto.UpdateCourseRequest) (*models.Course, error) {
	patch := models.CoursePatch{
		Name:       req.Name,
		Professor:  req.Professor,
		Credits:    req.Credits,
		Color:      req.Color,
		Semester:   req.Semester,
		Schedule:   req.Schedule,
		Categories: req.Categories,
	}
	updated, err := s.courses.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidatePages(ctx)
	return updated, nil
}

// Delete removes a course. Assignments referencing it survive and render
// with a placeholder course name.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidatePages(ctx)
	return nil
}

func (s *CourseService) invalidatePages(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, pageCachePattern); err != nil {
		s.logger.Warn("page cache invalidation failed", zap.Error(err))
	}
}

package memory

import (
	"context"
	"sort"

	"github.com/studytrack/studytrack-api/internal/models"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

// CourseStore implements repository.CourseStore over the shared DB.
type CourseStore struct {
	db *DB
}

func (s *CourseStore) List(ctx context.Context) ([]models.Course, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	courses := make([]models.Course, 0, len(s.db.courses))
	for _, c := range s.db.courses {
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *CourseStore) Get(ctx context.Context, id int) (*models.Course, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	course, ok := s.db.courses[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return &course, nil
}

func (s *CourseStore) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	created := *course
	created.ID = s.db.nextCourseID
	s.db.nextCourseID++
	s.db.courses[created.ID] = created
	return &created, nil
}

func (s *CourseStore) Update(ctx context.Context, id int, patch models.CoursePatch) (*models.Course, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	course, ok := s.db.courses[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	if patch.Name != nil {
		course.Name = *patch.Name
	}
	if patch.Professor != nil {
		course.Professor = *patch.Professor
	}
	if patch.Credits != nil {
		course.Credits = *patch.Credits
	}
	if patch.Color != nil {
		course.Color = *patch.Color
	}
	if patch.Semester != nil {
		course.Semester = *patch.Semester
	}
	if patch.Schedule != nil {
		course.Schedule = *patch.Schedule
	}
	if patch.Categories != nil {
		course.Categories = *patch.Categories
	}

	s.db.courses[id] = course
	return &course, nil
}

func (s *CourseStore) Delete(ctx context.Context, id int) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.courses[id]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	delete(s.db.courses, id)
	return nil
}

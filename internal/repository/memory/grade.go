package memory

import (
	"context"
	"sort"

	"github.com/studytrack/studytrack-api/internal/models"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

// GradeStore implements repository.GradeStore over the shared DB. Grade
// records are keyed by course ID; there is no separate identity.
type GradeStore struct {
	db *DB
}

func (s *GradeStore) List(ctx context.Context) ([]models.Grade, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	grades := make([]models.Grade, 0, len(s.db.grades))
	for _, g := range s.db.grades {
		grades = append(grades, g)
	}
	sort.Slice(grades, func(i, j int) bool { return grades[i].CourseID < grades[j].CourseID })
	return grades, nil
}

func (s *GradeStore) GetByCourse(ctx context.Context, courseID int) (*models.Grade, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	grade, ok := s.db.grades[courseID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "grade not found")
	}
	return &grade, nil
}

func (s *GradeStore) Create(ctx context.Context, grade *models.Grade) (*models.Grade, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	created := *grade
	s.db.grades[created.CourseID] = created
	return &created, nil
}

func (s *GradeStore) Update(ctx context.Context, courseID int, patch models.GradePatch) (*models.Grade, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	grade, ok := s.db.grades[courseID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "grade not found")
	}

	if patch.CurrentGrade != nil {
		grade.CurrentGrade = *patch.CurrentGrade
	}
	if patch.LetterGrade != nil {
		grade.LetterGrade = *patch.LetterGrade
	}
	if patch.Categories != nil {
		grade.Categories = *patch.Categories
	}
	if patch.AssignmentIDs != nil {
		grade.AssignmentIDs = *patch.AssignmentIDs
	}

	s.db.grades[courseID] = grade
	return &grade, nil
}

func (s *GradeStore) Delete(ctx context.Context, courseID int) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.grades[courseID]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "grade not found")
	}
	delete(s.db.grades, courseID)
	return nil
}

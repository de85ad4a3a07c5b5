package memory

import (
	"context"
	"sort"

	"github.com/studytrack/studytrack-api/internal/models"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

// AssignmentStore implements repository.AssignmentStore over the shared DB.
type AssignmentStore struct {
	db *DB
}

func (s *AssignmentStore) List(ctx context.Context) ([]models.Assignment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	assignments := make([]models.Assignment, 0, len(s.db.assignments))
	for _, a := range s.db.assignments {
		assignments = append(assignments, a)
	}
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].ID < assignments[j].ID })
	return assignments, nil
}

func (s *AssignmentStore) Get(ctx context.Context, id int) (*models.Assignment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	assignment, ok := s.db.assignments[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}
	return &assignment, nil
}

func (s *AssignmentStore) Create(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	created := *assignment
	created.ID = s.db.nextAssignmentID
	s.db.nextAssignmentID++
	if created.Priority == "" {
		created.Priority = models.PriorityMedium
	}
	if created.Status == "" {
		created.Status = models.StatusPending
	}
	s.db.assignments[created.ID] = created
	return &created, nil
}

func (s *AssignmentStore) Update(ctx context.Context, id int, patch models.AssignmentPatch) (*models.Assignment, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	assignment, ok := s.db.assignments[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}

	if patch.CourseID != nil {
		assignment.CourseID = *patch.CourseID
	}
	if patch.Title != nil {
		assignment.Title = *patch.Title
	}
	if patch.Description != nil {
		assignment.Description = *patch.Description
	}
	if patch.DueDate != nil {
		assignment.DueDate = *patch.DueDate
	}
	if patch.Priority != nil {
		assignment.Priority = *patch.Priority
	}
	if patch.Status != nil {
		assignment.Status = *patch.Status
	}
	if patch.Grade != nil {
		assignment.Grade = patch.Grade
	}
	if patch.Category != nil {
		assignment.Category = *patch.Category
	}

	s.db.assignments[id] = assignment
	return &assignment, nil
}

func (s *AssignmentStore) Delete(ctx context.Context, id int) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.assignments[id]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}
	delete(s.db.assignments, id)
	return nil
}

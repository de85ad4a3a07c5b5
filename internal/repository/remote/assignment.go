package remote

import (
	"context"
	"time"

	"github.com/studytrack/studytrack-api/internal/models"
)

const assignmentTable = "assignment_c"

// assignmentRecord mirrors the record store's assignment table.
type assignmentRecord struct {
	ID          int      `json:"id,omitempty"`
	CourseID    int      `json:"course_id_c"`
	Title       string   `json:"title_c"`
	Description string   `json:"description_c,omitempty"`
	DueDate     string   `json:"due_date_c"`
	Priority    string   `json:"priority_c"`
	Status      string   `json:"status_c"`
	Grade       *float64 `json:"grade_c,omitempty"`
	Category    string   `json:"category_c,omitempty"`
}

func (r assignmentRecord) toModel() models.Assignment {
	assignment := models.Assignment{
		ID:          r.ID,
		CourseID:    r.CourseID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    models.AssignmentPriority(r.Priority),
		Status:      models.AssignmentStatus(r.Status),
		Grade:       r.Grade,
		Category:    r.Category,
	}
	if assignment.Priority == "" {
		assignment.Priority = models.PriorityMedium
	}
	if assignment.Status == "" {
		assignment.Status = models.StatusPending
	}
	if r.DueDate != "" {
		if due, err := time.Parse(time.RFC3339, r.DueDate); err == nil {
			assignment.DueDate = due
		}
	}
	return assignment
}

func assignmentFields(a *models.Assignment) map[string]interface{} {
	priority := a.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	status := a.Status
	if status == "" {
		status = models.StatusPending
	}
	fields := map[string]interface{}{
		"course_id_c":   a.CourseID,
		"title_c":       a.Title,
		"description_c": a.Description,
		"due_date_c":    a.DueDate.UTC().Format(time.RFC3339),
		"priority_c":    string(priority),
		"status_c":      string(status),
		"category_c":    a.Category,
	}
	if a.Grade != nil {
		fields["grade_c"] = *a.Grade
	}
	return fields
}

func assignmentPatchFields(patch models.AssignmentPatch) map[string]interface{} {
	fields := map[string]interface{}{}
	if patch.CourseID != nil {
		fields["course_id_c"] = *patch.CourseID
	}
	if patch.Title != nil {
		fields["title_c"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description_c"] = *patch.Description
	}
	if patch.DueDate != nil {
		fields["due_date_c"] = patch.DueDate.UTC().Format(time.RFC3339)
	}
	if patch.Priority != nil {
		fields["priority_c"] = string(*patch.Priority)
	}
	if patch.Status != nil {
		fields["status_c"] = string(*patch.Status)
	}
	if patch.Grade != nil {
		fields["grade_c"] = *patch.Grade
	}
	if patch.Category != nil {
		fields["category_c"] = *patch.Category
	}
	return fields
}

// AssignmentStore implements repository.AssignmentStore against the record
// store.
type AssignmentStore struct {
	client *Client
}

func (s *AssignmentStore) List(ctx context.Context) ([]models.Assignment, error) {
	var records []assignmentRecord
	if err := s.client.list(ctx, assignmentTable, &records); err != nil {
		return nil, err
	}
	assignments := make([]models.Assignment, 0, len(records))
	for _, r := range records {
		assignments = append(assignments, r.toModel())
	}
	return assignments, nil
}

func (s *AssignmentStore) Get(ctx context.Context, id int) (*models.Assignment, error) {
	var record assignmentRecord
	if err := s.client.get(ctx, assignmentTable, id, &record); err != nil {
		return nil, err
	}
	assignment := record.toModel()
	return &assignment, nil
}

func (s *AssignmentStore) Create(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	var record assignmentRecord
	if err := s.client.create(ctx, assignmentTable, assignmentFields(assignment), &record); err != nil {
		return nil, err
	}
	created := record.toModel()
	return &created, nil
}

func (s *AssignmentStore) Update(ctx context.Context, id int, patch models.AssignmentPatch) (*models.Assignment, error) {
	var record assignmentRecord
	if err := s.client.update(ctx, assignmentTable, id, assignmentPatchFields(patch), &record); err != nil {
		return nil, err
	}
	updated := record.toModel()
	return &updated, nil
}

func (s *AssignmentStore) Delete(ctx context.Context, id int) error {
	return s.client.remove(ctx, assignmentTable, id)
}

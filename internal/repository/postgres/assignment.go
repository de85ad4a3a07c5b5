package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studytrack/studytrack-api/internal/models"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

// AssignmentStore implements repository.AssignmentStore on PostgreSQL.
type AssignmentStore struct {
	db *sqlx.DB
}

type assignmentRow struct {
	ID          int       `db:"id"`
	CourseID    int       `db:"course_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	DueDate     time.Time `db:"due_date"`
	Priority    string    `db:"priority"`
	Status      string    `db:"status"`
	Grade       *float64  `db:"grade"`
	Category    string    `db:"category"`
}

func (r assignmentRow) toModel() models.Assignment {
	return models.Assignment{
		ID:          r.ID,
		CourseID:    r.CourseID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    models.AssignmentPriority(r.Priority),
		Status:      models.AssignmentStatus(r.Status),
		Grade:       r.Grade,
		Category:    r.Category,
	}
}

const assignmentColumns = "id, course_id, title, description, due_date, priority, status, grade, category"

func (s *AssignmentStore) List(ctx context.Context) ([]models.Assignment, error) {
	var rows []assignmentRow
	query := fmt.Sprintf("SELECT %s FROM assignments ORDER BY id", assignmentColumns)
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	assignments := make([]models.Assignment, 0, len(rows))
	for _, r := range rows {
		assignments = append(assignments, r.toModel())
	}
	return assignments, nil
}

func (s *AssignmentStore) Get(ctx context.Context, id int) (*models.Assignment, error) {
	var row assignmentRow
	query := fmt.Sprintf("SELECT %s FROM assignments WHERE id = $1", assignmentColumns)
	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, notFoundOr(err, "assignment not found")
	}
	assignment := row.toModel()
	return &assignment, nil
}

func (s *AssignmentStore) Create(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	created := *assignment
	if created.Priority == "" {
		created.Priority = models.PriorityMedium
	}
	if created.Status == "" {
		created.Status = models.StatusPending
	}

	const query = `INSERT INTO assignments (course_id, title, description, due_date, priority, status, grade, category)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	var id int
	if err := s.db.QueryRowxContext(ctx, query,
		created.CourseID, created.Title, created.Description, created.DueDate,
		string(created.Priority), string(created.Status), created.Grade, created.Category,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	created.ID = id
	return &created, nil
}

func (s *AssignmentStore) Update(ctx context.Context, id int, patch models.AssignmentPatch) (*models.Assignment, error) {
	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if patch.CourseID != nil {
		add("course_id", *patch.CourseID)
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.DueDate != nil {
		add("due_date", *patch.DueDate)
	}
	if patch.Priority != nil {
		add("priority", string(*patch.Priority))
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.Grade != nil {
		add("grade", *patch.Grade)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}

	if len(sets) == 0 {
		return s.Get(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE assignments SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), assignmentColumns)

	var row assignmentRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, notFoundOr(err, "assignment not found")
	}
	assignment := row.toModel()
	return &assignment, nil
}

func (s *AssignmentStore) Delete(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM assignments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}
	return nil
}

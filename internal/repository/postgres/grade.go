package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/studytrack/studytrack-api/internal/models"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

// GradeStore implements repository.GradeStore on PostgreSQL. course_id is
// the primary key; one record per course.
type GradeStore struct {
	db *sqlx.DB
}

type gradeRow struct {
	CourseID      int     `db:"course_id"`
	CurrentGrade  float64 `db:"current_grade"`
	LetterGrade   string  `db:"letter_grade"`
	Breakdown     []byte  `db:"breakdown"`
	AssignmentIDs []byte  `db:"assignment_ids"`
}

func (r gradeRow) toModel() models.Grade {
	grade := models.Grade{
		CourseID:     r.CourseID,
		CurrentGrade: r.CurrentGrade,
		LetterGrade:  r.LetterGrade,
	}
	if len(r.Breakdown) > 0 {
		_ = json.Unmarshal(r.Breakdown, &grade.Categories)
	}
	if len(r.AssignmentIDs) > 0 {
		_ = json.Unmarshal(r.AssignmentIDs, &grade.AssignmentIDs)
	}
	return grade
}

const gradeColumns = "course_id, current_grade, letter_grade, breakdown, assignment_ids"

func (s *GradeStore) List(ctx context.Context) ([]models.Grade, error) {
	var rows []gradeRow
	query := fmt.Sprintf("SELECT %s FROM grades ORDER BY course_id", gradeColumns)
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	grades := make([]models.Grade, 0, len(rows))
	for _, r := range rows {
		grades = append(grades, r.toModel())
	}
	return grades, nil
}

func (s *GradeStore) GetByCourse(ctx context.Context, courseID int) (*models.Grade, error) {
	var row gradeRow
	query := fmt.Sprintf("SELECT %s FROM grades WHERE course_id = $1", gradeColumns)
	if err := s.db.GetContext(ctx, &row, query, courseID); err != nil {
		return nil, notFoundOr(err, "grade not found")
	}
	grade := row.toModel()
	return &grade, nil
}

func (s *GradeStore) Create(ctx context.Context, grade *models.Grade) (*models.Grade, error) {
	breakdown, _ := json.Marshal(grade.Categories)
	assignmentIDs, _ := json.Marshal(grade.AssignmentIDs)

	const query = `INSERT INTO grades (course_id, current_grade, letter_grade, breakdown, assignment_ids)
        VALUES ($1, $2, $3, $4, $5)`
	if _, err := s.db.ExecContext(ctx, query,
		grade.CourseID, grade.CurrentGrade, grade.LetterGrade, breakdown, assignmentIDs,
	); err != nil {
		return nil, fmt.Errorf("create grade: %w", err)
	}

	created := *grade
	return &created, nil
}

func (s *GradeStore) Update(ctx context.Context, courseID int, patch models.GradePatch) (*models.Grade, error) {
	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if patch.CurrentGrade != nil {
		add("current_grade", *patch.CurrentGrade)
	}
	if patch.LetterGrade != nil {
		add("letter_grade", *patch.LetterGrade)
	}
	if patch.Categories != nil {
		raw, _ := json.Marshal(*patch.Categories)
		add("breakdown", raw)
	}
	if patch.AssignmentIDs != nil {
		raw, _ := json.Marshal(*patch.AssignmentIDs)
		add("assignment_ids", raw)
	}

	if len(sets) == 0 {
		return s.GetByCourse(ctx, courseID)
	}

	args = append(args, courseID)
	query := fmt.Sprintf("UPDATE grades SET %s WHERE course_id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), gradeColumns)

	var row gradeRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, notFoundOr(err, "grade not found")
	}
	grade := row.toModel()
	return &grade, nil
}

func (s *GradeStore) Delete(ctx context.Context, courseID int) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM grades WHERE course_id = $1", courseID)
	if err != nil {
		return fmt.Errorf("delete grade: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "grade not found")
	}
	return nil
}

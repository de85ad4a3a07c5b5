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

// CourseStore implements repository.CourseStore on PostgreSQL. Schedule and
// category weights live in JSONB columns.
type CourseStore struct {
	db *sqlx.DB
}

type courseRow struct {
	ID         int    `db:"id"`
	Name       string `db:"name"`
	Professor  string `db:"professor"`
	Credits    int    `db:"credits"`
	Color      string `db:"color"`
	Semester   string `db:"semester"`
	Schedule   []byte `db:"schedule"`
	Categories []byte `db:"categories"`
}

func (r courseRow) toModel() models.Course {
	course := models.Course{
		ID:        r.ID,
		Name:      r.Name,
		Professor: r.Professor,
		Credits:   r.Credits,
		Color:     r.Color,
		Semester:  r.Semester,
	}
	if len(r.Schedule) > 0 {
		_ = json.Unmarshal(r.Schedule, &course.Schedule)
	}
	if len(r.Categories) > 0 {
		_ = json.Unmarshal(r.Categories, &course.Categories)
	}
	return course
}

const courseColumns = "id, name, professor, credits, color, semester, schedule, categories"

func (s *CourseStore) List(ctx context.Context) ([]models.Course, error) {
	var rows []courseRow
	query := fmt.Sprintf("SELECT %s FROM courses ORDER BY id", courseColumns)
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	courses := make([]models.Course, 0, len(rows))
	for _, r := range rows {
		courses = append(courses, r.toModel())
	}
	return courses, nil
}

func (s *CourseStore) Get(ctx context.Context, id int) (*models.Course, error) {
	var row courseRow
	query := fmt.Sprintf("SELECT %s FROM courses WHERE id = $1", courseColumns)
	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, notFoundOr(err, "course not found")
	}
	course := row.toModel()
	return &course, nil
}

func (s *CourseStore) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	schedule, _ := json.Marshal(course.Schedule)
	categories, _ := json.Marshal(course.Categories)

	const query = `INSERT INTO courses (name, professor, credits, color, semester, schedule, categories)
        VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	var id int
	if err := s.db.QueryRowxContext(ctx, query,
		course.Name, course.Professor, course.CreditHours(), course.Color, course.Semester, schedule, categories,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	created := *course
	created.ID = id
	created.Credits = created.CreditHours()
	return &created, nil
}

func (s *CourseStore) Update(ctx context.Context, id int, patch models.CoursePatch) (*models.Course, error) {
	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Professor != nil {
		add("professor", *patch.Professor)
	}
	if patch.Credits != nil {
		add("credits", *patch.Credits)
	}
	if patch.Color != nil {
		add("color", *patch.Color)
	}
	if patch.Semester != nil {
		add("semester", *patch.Semester)
	}
	if patch.Schedule != nil {
		raw, _ := json.Marshal(*patch.Schedule)
		add("schedule", raw)
	}
	if patch.Categories != nil {
		raw, _ := json.Marshal(*patch.Categories)
		add("categories", raw)
	}

	if len(sets) == 0 {
		return s.Get(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE courses SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), courseColumns)

	var row courseRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, notFoundOr(err, "course not found")
	}
	course := row.toModel()
	return &course, nil
}

func (s *CourseStore) Delete(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return nil
}

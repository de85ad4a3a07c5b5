package remote

import (
	"context"
	"encoding/json"

	"github.com/studytrack/studytrack-api/internal/models"
)

const gradeTable = "grade_c"

// gradeRecord mirrors the record store's grade table. Grade records are
// addressed by course ID; the store keeps no separate identity for them.
type gradeRecord struct {
	CourseID      int     `json:"course_id_c"`
	CurrentGrade  float64 `json:"current_grade_c"`
	LetterGrade   string  `json:"letter_grade_c,omitempty"`
	Breakdown     string  `json:"breakdown_c,omitempty"`
	AssignmentIDs string  `json:"assignments_c,omitempty"`
}

func (r gradeRecord) toModel() models.Grade {
	grade := models.Grade{
		CourseID:     r.CourseID,
		CurrentGrade: r.CurrentGrade,
		LetterGrade:  r.LetterGrade,
	}
	if r.Breakdown != "" {
		_ = json.Unmarshal([]byte(r.Breakdown), &grade.Categories)
	}
	if r.AssignmentIDs != "" {
		_ = json.Unmarshal([]byte(r.AssignmentIDs), &grade.AssignmentIDs)
	}
	return grade
}

func gradeFields(g *models.Grade) map[string]interface{} {
	fields := map[string]interface{}{
		"course_id_c":     g.CourseID,
		"current_grade_c": g.CurrentGrade,
		"letter_grade_c":  g.LetterGrade,
	}
	if len(g.Categories) > 0 {
		if raw, err := json.Marshal(g.Categories); err == nil {
			fields["breakdown_c"] = string(raw)
		}
	}
	if len(g.AssignmentIDs) > 0 {
		if raw, err := json.Marshal(g.AssignmentIDs); err == nil {
			fields["assignments_c"] = string(raw)
		}
	}
	return fields
}

func gradePatchFields(patch models.GradePatch) map[string]interface{} {
	fields := map[string]interface{}{}
	if patch.CurrentGrade != nil {
		fields["current_grade_c"] = *patch.CurrentGrade
	}
	if patch.LetterGrade != nil {
		fields["letter_grade_c"] = *patch.LetterGrade
	}
	if patch.Categories != nil {
		if raw, err := json.Marshal(*patch.Categories); err == nil {
			fields["breakdown_c"] = string(raw)
		}
	}
	if patch.AssignmentIDs != nil {
		if raw, err := json.Marshal(*patch.AssignmentIDs); err == nil {
			fields["assignments_c"] = string(raw)
		}
	}
	return fields
}

// GradeStore implements repository.GradeStore against the record store.
type GradeStore struct {
	client *Client
}

func (s *GradeStore) List(ctx context.Context) ([]models.Grade, error) {
	var records []gradeRecord
	if err := s.client.list(ctx, gradeTable, &records); err != nil {
		return nil, err
	}
	grades := make([]models.Grade, 0, len(records))
	for _, r := range records {
		grades = append(grades, r.toModel())
	}
	return grades, nil
}

func (s *GradeStore) GetByCourse(ctx context.Context, courseID int) (*models.Grade, error) {
	var record gradeRecord
	if err := s.client.get(ctx, gradeTable, courseID, &record); err != nil {
		return nil, err
	}
	grade := record.toModel()
	return &grade, nil
}

func (s *GradeStore) Create(ctx context.Context, grade *models.Grade) (*models.Grade, error) {
	var record gradeRecord
	if err := s.client.create(ctx, gradeTable, gradeFields(grade), &record); err != nil {
		return nil, err
	}
	created := record.toModel()
	return &created, nil
}

func (s *GradeStore) Update(ctx context.Context, courseID int, patch models.GradePatch) (*models.Grade, error) {
	var record gradeRecord
	if err := s.client.update(ctx, gradeTable, courseID, gradePatchFields(patch), &record); err != nil {
		return nil, err
	}
	updated := record.toModel()
	return &updated, nil
}

func (s *GradeStore) Delete(ctx context.Context, courseID int) error {
	return s.client.remove(ctx, gradeTable, courseID)
}

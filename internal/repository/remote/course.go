package remote

import (
	"context"
	"encoding/json"

	"github.com/studytrack/studytrack-api/internal/models"
)

const courseTable = "course_c"

// courseRecord mirrors the record store's course table. Structured fields
// (schedule, category weights) are stored as JSON-encoded text columns.
type courseRecord struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"name_c"`
	Professor  string `json:"professor_c"`
	Credits    int    `json:"credits_c"`
	Color      string `json:"color_c"`
	Semester   string `json:"semester_c"`
	Schedule   string `json:"schedule_c,omitempty"`
	Categories string `json:"categories_c,omitempty"`
}

func (r courseRecord) toModel() models.Course {
	course := models.Course{
		ID:        r.ID,
		Name:      r.Name,
		Professor: r.Professor,
		Credits:   r.Credits,
		Color:     r.Color,
		Semester:  r.Semester,
	}
	if course.Credits <= 0 {
		course.Credits = models.DefaultCredits
	}
	if course.Color == "" {
		course.Color = models.DefaultColor
	}
	// Malformed embedded JSON degrades to an empty list rather than
	// failing the whole fetch.
	if r.Schedule != "" {
		_ = json.Unmarshal([]byte(r.Schedule), &course.Schedule)
	}
	if r.Categories != "" {
		_ = json.Unmarshal([]byte(r.Categories), &course.Categories)
	}
	return course
}

func courseFields(course *models.Course) map[string]interface{} {
	fields := map[string]interface{}{
		"name_c":      course.Name,
		"professor_c": course.Professor,
		"credits_c":   course.CreditHours(),
		"color_c":     course.Color,
		"semester_c":  course.Semester,
	}
	if len(course.Schedule) > 0 {
		if raw, err := json.Marshal(course.Schedule); err == nil {
			fields["schedule_c"] = string(raw)
		}
	}
	if len(course.Categories) > 0 {
		if raw, err := json.Marshal(course.Categories); err == nil {
			fields["categories_c"] = string(raw)
		}
	}
	return fields
}

func coursePatchFields(patch models.CoursePatch) map[string]interface{} {
	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name_c"] = *patch.Name
	}
	if patch.Professor != nil {
		fields["professor_c"] = *patch.Professor
	}
	if patch.Credits != nil {
		fields["credits_c"] = *patch.Credits
	}
	if patch.Color != nil {
		fields["color_c"] = *patch.Color
	}
	if patch.Semester != nil {
		fields["semester_c"] = *patch.Semester
	}
	if patch.Schedule != nil {
		if raw, err := json.Marshal(*patch.Schedule); err == nil {
			fields["schedule_c"] = string(raw)
		}
	}
	if patch.Categories != nil {
		if raw, err := json.Marshal(*patch.Categories); err == nil {
			fields["categories_c"] = string(raw)
		}
	}
	return fields
}

// CourseStore implements repository.CourseStore against the record store.
type CourseStore struct {
	client *Client
}

func (s *CourseStore) List(ctx context.Context) ([]models.Course, error) {
	var records []courseRecord
	if err := s.client.list(ctx, courseTable, &records); err != nil {
		return nil, err
	}
	courses := make([]models.Course, 0, len(records))
	for _, r := range records {
		courses = append(courses, r.toModel())
	}
	return courses, nil
}

func (s *CourseStore) Get(ctx context.Context, id int) (*models.Course, error) {
	var record courseRecord
	if err := s.client.get(ctx, courseTable, id, &record); err != nil {
		return nil, err
	}
	course := record.toModel()
	return &course, nil
}

func (s *CourseStore) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	var record courseRecord
	if err := s.client.create(ctx, courseTable, courseFields(course), &record); err != nil {
		return nil, err
	}
	created := record.toModel()
	return &created, nil
}

func (s *CourseStore) Update(ctx context.Context, id int, patch models.CoursePatch) (*models.Course, error) {
	var record courseRecord
	if err := s.client.update(ctx, courseTable, id, coursePatchFields(patch), &record); err != nil {
		return nil, err
	}
	updated := record.toModel()
	return &updated, nil
}

func (s *CourseStore) Delete(ctx context.Context, id int) error {
	return s.client.remove(ctx, courseTable, id)
}

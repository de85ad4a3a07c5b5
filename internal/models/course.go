package models

// Defaults substituted when the backing store omits a field.
const (
	DefaultCredits = 3
	DefaultColor   = "#6B7280"
)

// ScheduleSlot is one recurring meeting of a course.
type ScheduleSlot struct {
	Day  string `json:"day" db:"day"`
	Time string `json:"time" db:"time"`
}

// CategoryWeight describes how much a grading category contributes to the
// course grade.
type CategoryWeight struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Course is an academic class with credits, schedule and grading weights.
type Course struct {
	ID         int              `json:"id" db:"id"`
	Name       string           `json:"name" db:"name"`
	Professor  string           `json:"professor" db:"professor"`
	Credits    int              `json:"credits" db:"credits"`
	Color      string           `json:"color" db:"color"`
	Semester   string           `json:"semester" db:"semester"`
	Schedule   []ScheduleSlot   `json:"schedule,omitempty" db:"-"`
	Categories []CategoryWeight `json:"categories,omitempty" db:"-"`
}

// CreditHours returns the credit count, substituting the default when the
// store holds zero. Absence and zero are indistinguishable on purpose; the
// default is part of every GPA and credit computation.
func (c Course) CreditHours() int {
	if c.Credits <= 0 {
		return DefaultCredits
	}
	return c.Credits
}

// CoursePatch carries a partial update; nil fields are left untouched.
type CoursePatch struct {
	Name       *string           `json:"name,omitempty"`
	Professor  *string           `json:"professor,omitempty"`
	Credits    *int              `json:"credits,omitempty"`
	Color      *string           `json:"color,omitempty"`
	Semester   *string           `json:"semester,omitempty"`
	Schedule   *[]ScheduleSlot   `json:"schedule,omitempty"`
	Categories *[]CategoryWeight `json:"categories,omitempty"`
}

// CourseFilter narrows a course listing.
type CourseFilter struct {
	Search   string
	Semester string
}

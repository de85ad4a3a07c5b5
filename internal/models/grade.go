package models

// CategoryGrade is one graded category within a course grade record.
type CategoryGrade struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Grade  float64 `json:"grade"`
}

// Grade is the aggregated grading state for one course. There is exactly
// one record per course; the course ID is its identity. CurrentGrade at or
// below zero is the "ungraded" sentinel, not a real score.
type Grade struct {
	CourseID      int             `json:"courseId" db:"course_id"`
	CurrentGrade  float64         `json:"currentGrade" db:"current_grade"`
	LetterGrade   string          `json:"letterGrade" db:"letter_grade"`
	Categories    []CategoryGrade `json:"categories,omitempty" db:"-"`
	AssignmentIDs []int           `json:"assignmentIds,omitempty" db:"-"`
}

// Graded reports whether the record carries a real score.
func (g Grade) Graded() bool {
	return g.CurrentGrade > 0
}

// GradePatch carries a partial update; nil fields are left untouched.
type GradePatch struct {
	CurrentGrade  *float64         `json:"currentGrade,omitempty"`
	LetterGrade   *string          `json:"letterGrade,omitempty"`
	Categories    *[]CategoryGrade `json:"categories,omitempty"`
	AssignmentIDs *[]int           `json:"assignmentIds,omitempty"`
}

// GradesByCourse reshapes a flat grade list into a map keyed by course ID.
// Last write wins when duplicate course records exist.
func GradesByCourse(grades []Grade) map[int]Grade {
	byCourse := make(map[int]Grade, len(grades))
	for _, g := range grades {
		byCourse[g.CourseID] = g
	}
	return byCourse
}

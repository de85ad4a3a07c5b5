package models

import "time"

// AssignmentPriority enumerates assignment urgency.
type AssignmentPriority string

const (
	PriorityLow    AssignmentPriority = "low"
	PriorityMedium AssignmentPriority = "medium"
	PriorityHigh   AssignmentPriority = "high"
)

// AssignmentStatus enumerates completion state.
type AssignmentStatus string

const (
	StatusPending   AssignmentStatus = "pending"
	StatusCompleted AssignmentStatus = "completed"
)

// Assignment is a gradable task tied to a course. CourseID may reference a
// course that has since been deleted; presentation substitutes a
// placeholder rather than failing.
type Assignment struct {
	ID          int                `json:"id" db:"id"`
	CourseID    int                `json:"courseId" db:"course_id"`
	Title       string             `json:"title" db:"title"`
	Description string             `json:"description,omitempty" db:"description"`
	DueDate     time.Time          `json:"dueDate" db:"due_date"`
	Priority    AssignmentPriority `json:"priority" db:"priority"`
	Status      AssignmentStatus   `json:"status" db:"status"`
	Grade       *float64           `json:"grade,omitempty" db:"grade"`
	Category    string             `json:"category,omitempty" db:"category"`
}

// AssignmentPatch carries a partial update; nil fields are left untouched.
type AssignmentPatch struct {
	CourseID    *int                `json:"courseId,omitempty"`
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	DueDate     *time.Time          `json:"dueDate,omitempty"`
	Priority    *AssignmentPriority `json:"priority,omitempty"`
	Status      *AssignmentStatus   `json:"status,omitempty"`
	Grade       *float64            `json:"grade,omitempty"`
	Category    *string             `json:"category,omitempty"`
}

// Filter wildcard accepted alongside the empty string.
const FilterAll = "all"

// AssignmentFilter narrows an assignment listing. Zero values mean "all".
// StatusOverdue is accepted in Status and matches pending assignments whose
// due date has passed.
type AssignmentFilter struct {
	Search   string
	Status   string
	CourseID int
	Priority string
}

// StatusOverdue is a filter-only pseudo status.
const StatusOverdue = "overdue"

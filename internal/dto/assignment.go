package dto

import (
	"time"

	"github.com/studytrack/studytrack-api/internal/models"
)

// AssignmentView is an assignment decorated with the presentation fields
// the clients render: course identity, badge variant, label and countdown.
type AssignmentView struct {
	models.Assignment
	CourseName    string `json:"courseName"`
	CourseColor   string `json:"courseColor"`
	StatusVariant string `json:"statusVariant"`
	StatusLabel   string `json:"statusLabel"`
	Countdown     string `json:"countdown"`
}

// AssignmentStats summarises an assignment listing.
type AssignmentStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

// AssignmentListResponse is the filtered, sorted assignment page payload.
type AssignmentListResponse struct {
	Assignments []AssignmentView `json:"assignments"`
	Stats       AssignmentStats  `json:"stats"`
}

// CreateAssignmentRequest carries a new assignment submission.
type CreateAssignmentRequest struct {
	CourseID    int       `json:"courseId" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
	Priority    string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	Category    string    `json:"category"`
}

// UpdateAssignmentRequest carries a partial assignment update. Absent
// fields leave the stored value untouched.
type UpdateAssignmentRequest struct {
	CourseID    *int       `json:"courseId"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      *string    `json:"status" binding:"omitempty,oneof=pending completed"`
	Grade       *float64   `json:"grade"`
	Category    *string    `json:"category"`
}

// UpdateAssignmentStatusRequest toggles completion.
type UpdateAssignmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed"`
}

package dto

import "github.com/studytrack/studytrack-api/internal/models"

// SemesterStats summarises the filtered course listing.
type SemesterStats struct {
	CourseCount  int     `json:"courseCount"`
	TotalCredits int     `json:"totalCredits"`
	GradedCount  int     `json:"gradedCount"`
	AverageGrade float64 `json:"averageGrade"`
}

// CourseListResponse is the courses page payload.
type CourseListResponse struct {
	Courses []CourseView  `json:"courses"`
	Stats   SemesterStats `json:"stats"`
}

// CourseView is a course with its current grade state attached.
type CourseView struct {
	models.Course
	CurrentGrade float64 `json:"currentGrade"`
	LetterGrade  string  `json:"letterGrade,omitempty"`
}

// CreateCourseRequest carries a new course submission.
type CreateCourseRequest struct {
	Name       string                  `json:"name" binding:"required"`
	Professor  string                  `json:"professor"`
	Credits    int                     `json:"credits" binding:"omitempty,min=0,max=12"`
	Color      string                  `json:"color"`
	Semester   string                  `json:"semester"`
	Schedule   []models.ScheduleSlot   `json:"schedule"`
	Categories []models.CategoryWeight `json:"categories"`
}

// UpdateCourseRequest carries a partial course update. Absent fields leave
// the stored value untouched.
type UpdateCourseRequest struct {
	Name       *string                  `json:"name"`
	Professor  *string                  `json:"professor"`
	Credits    *int                     `json:"credits" binding:"omitempty,min=0,max=12"`
	Color      *string                  `json:"color"`
	Semester   *string                  `json:"semester"`
	Schedule   *[]models.ScheduleSlot   `json:"schedule"`
	Categories *[]models.CategoryWeight `json:"categories"`
}

package dto

import "github.com/studytrack/studytrack-api/internal/models"

// GradeSummary is the headline block of the grades page.
type GradeSummary struct {
	GPA           string  `json:"gpa"`
	TotalCredits  int     `json:"totalCredits"`
	GradedCourses int     `json:"gradedCourses"`
	AverageGrade  float64 `json:"averageGrade"`
}

// CourseGradeRow is one course's grading state on the grades page.
type CourseGradeRow struct {
	CourseID             int                    `json:"courseId"`
	CourseName           string                 `json:"courseName"`
	Credits              int                    `json:"credits"`
	CurrentGrade         float64                `json:"currentGrade"`
	LetterGrade          string                 `json:"letterGrade"`
	ColorHint            string                 `json:"colorHint"`
	Categories           []models.CategoryGrade `json:"categories,omitempty"`
	AssignmentsCompleted int                    `json:"assignmentsCompleted"`
	AssignmentsTotal     int                    `json:"assignmentsTotal"`
}

// GradesOverviewResponse is the grades page payload.
type GradesOverviewResponse struct {
	Summary GradeSummary     `json:"summary"`
	Courses []CourseGradeRow `json:"courses"`
}

// CreateGradeRequest registers the grading record for a course.
type CreateGradeRequest struct {
	CourseID      int                    `json:"courseId" binding:"required"`
	CurrentGrade  float64                `json:"currentGrade" binding:"omitempty,min=0,max=100"`
	Categories    []models.CategoryGrade `json:"categories"`
	AssignmentIDs []int                  `json:"assignmentIds"`
}

// UpdateGradeRequest carries a partial grade update.
type UpdateGradeRequest struct {
	CurrentGrade  *float64                `json:"currentGrade" binding:"omitempty,min=0,max=100"`
	Categories    *[]models.CategoryGrade `json:"categories"`
	AssignmentIDs *[]int                  `json:"assignmentIds"`
}

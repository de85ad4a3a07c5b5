package service

import (
	"fmt"

	"github.com/studytrack/studytrack-api/internal/models"
)

// gradeStep is one rung of the letter-grade ladder. Bounds are inclusive:
// a percentage exactly at a boundary maps to the higher bucket, and no
// rounding is applied before comparison.
type gradeStep struct {
	min    float64
	letter string
	points float64
	color  string
}

// Letter grades and 4.0-scale points share one ladder so the two mappings
// can never disagree at a boundary.
var gradeLadder = []gradeStep{
	{97, "A+", 4.0, "green"},
	{93, "A", 4.0, "green"},
	{90, "A-", 3.7, "green"},
	{87, "B+", 3.3, "blue"},
	{83, "B", 3.0, "blue"},
	{80, "B-", 2.7, "blue"},
	{77, "C+", 2.3, "yellow"},
	{73, "C", 2.0, "yellow"},
	{70, "C-", 1.7, "yellow"},
	{67, "D+", 1.3, "orange"},
	{65, "D", 1.0, "orange"},
	{60, "D-", 0.7, "orange"},
}

// LetterGrade maps a percentage to its letter and a presentation color hint.
func LetterGrade(percentage float64) (string, string) {
	for _, step := range gradeLadder {
		if percentage >= step.min {
			return step.letter, step.color
		}
	}
	return "F", "red"
}

// GradePoints maps a percentage to its 4.0-scale grade-point value.
func GradePoints(percentage float64) float64 {
	for _, step := range gradeLadder {
		if percentage >= step.min {
			return step.points
		}
	}
	return 0.0
}

// ComputeGPA combines per-course current grades and credit weights into an
// overall GPA and the credit total behind it. Courses without a real grade
// (currentGrade <= 0) are excluded from both sums rather than scored as
// zero, so an in-progress term never drags the average down.
func ComputeGPA(courses []models.Course, gradesByCourse map[int]models.Grade) (string, int) {
	totalPoints := 0.0
	totalCredits := 0

	for _, course := range courses {
		grade, ok := gradesByCourse[course.ID]
		if !ok || !grade.Graded() {
			continue
		}
		credits := course.CreditHours()
		totalPoints += GradePoints(grade.CurrentGrade) * float64(credits)
		totalCredits += credits
	}

	if totalCredits == 0 {
		return "0.00", 0
	}
	return fmt.Sprintf("%.2f", totalPoints/float64(totalCredits)), totalCredits
}

// AverageGrade returns the unweighted mean percentage across graded
// courses, or 0 when nothing is graded.
func AverageGrade(gradesByCourse map[int]models.Grade) float64 {
	sum := 0.0
	count := 0
	for _, grade := range gradesByCourse {
		if !grade.Graded() {
			continue
		}
		sum += grade.CurrentGrade
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

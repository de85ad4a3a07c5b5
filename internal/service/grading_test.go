package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studytrack/studytrack-api/internal/models"
)

func TestLetterGradeBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		letter     string
		points     float64
	}{
		{"exact A- boundary", 90, "A-", 3.7},
		{"just below A- boundary", 89.999, "B+", 3.3},
		{"top of scale", 100, "A+", 4.0},
		{"exact A+ boundary", 97, "A+", 4.0},
		{"exact D- boundary", 60, "D-", 0.7},
		{"just below passing", 59.999, "F", 0.0},
		{"zero", 0, "F", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			letter, _ := LetterGrade(tt.percentage)
			assert.Equal(t, tt.letter, letter)
			assert.Equal(t, tt.points, GradePoints(tt.percentage))
		})
	}
}

func TestLetterGradeColorBands(t *testing.T) {
	_, green := LetterGrade(95)
	_, blue := LetterGrade(85)
	_, yellow := LetterGrade(75)
	_, orange := LetterGrade(65)
	_, red := LetterGrade(50)

	assert.Equal(t, "green", green)
	assert.Equal(t, "blue", blue)
	assert.Equal(t, "yellow", yellow)
	assert.Equal(t, "orange", orange)
	assert.Equal(t, "red", red)
}

func TestComputeGPAExcludesUngradedCourses(t *testing.T) {
	courses := []models.Course{
		{ID: 1, Name: "Calculus II", Credits: 4},
		{ID: 2, Name: "Sociology", Credits: 3},
	}
	grades := map[int]models.Grade{
		1: {CourseID: 1, CurrentGrade: 90},
		2: {CourseID: 2, CurrentGrade: 0},
	}

	gpa, credits := ComputeGPA(courses, grades)
	assert.Equal(t, "3.70", gpa)
	assert.Equal(t, 4, credits)
}

func TestComputeGPADefaultsMissingCredits(t *testing.T) {
	courses := []models.Course{{ID: 1, Name: "Ethics"}}
	grades := map[int]models.Grade{1: {CourseID: 1, CurrentGrade: 93}}

	gpa, credits := ComputeGPA(courses, grades)
	assert.Equal(t, "4.00", gpa)
	assert.Equal(t, models.DefaultCredits, credits)
}

func TestComputeGPAEmpty(t *testing.T) {
	gpa, credits := ComputeGPA(nil, nil)
	assert.Equal(t, "0.00", gpa)
	assert.Equal(t, 0, credits)
}

func TestComputeGPAWeightsByCredits(t *testing.T) {
	courses := []models.Course{
		{ID: 1, Credits: 4},
		{ID: 2, Credits: 2},
	}
	grades := map[int]models.Grade{
		1: {CourseID: 1, CurrentGrade: 95}, // A, 4.0
		2: {CourseID: 2, CurrentGrade: 71}, // C-, 1.7
	}

	// (4.0*4 + 1.7*2) / 6 = 3.233...
	gpa, credits := ComputeGPA(courses, grades)
	assert.Equal(t, "3.23", gpa)
	assert.Equal(t, 6, credits)
}

func TestAverageGradeSkipsUngraded(t *testing.T) {
	grades := map[int]models.Grade{
		1: {CourseID: 1, CurrentGrade: 80},
		2: {CourseID: 2, CurrentGrade: 90},
		3: {CourseID: 3, CurrentGrade: 0},
	}
	assert.InDelta(t, 85, AverageGrade(grades), 1e-9)
	assert.Zero(t, AverageGrade(nil))
}

package memory

import (
	"time"

	"github.com/studytrack/studytrack-api/internal/models"
)

// Seed loads a small fixture set for local development. IDs continue past
// the seeded maximum.
func (d *DB) Seed(now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	courses := []models.Course{
		{
			ID: 1, Name: "Calculus II", Professor: "Dr. Reyes", Credits: 4,
			Color: "#4F46E5", Semester: "Fall 2025",
			Schedule: []models.ScheduleSlot{{Day: "Mon", Time: "09:00"}, {Day: "Wed", Time: "09:00"}},
			Categories: []models.CategoryWeight{
				{Name: "Homework", Weight: 30}, {Name: "Midterm", Weight: 30}, {Name: "Final", Weight: 40},
			},
		},
		{
			ID: 2, Name: "Intro to Sociology", Professor: "Prof. Okafor", Credits: 3,
			Color: "#059669", Semester: "Fall 2025",
			Schedule: []models.ScheduleSlot{{Day: "Tue", Time: "13:00"}},
		},
		{
			ID: 3, Name: "Organic Chemistry", Professor: "Dr. Lindqvist", Credits: 4,
			Color: "#DC2626", Semester: "Fall 2025",
		},
	}
	for _, c := range courses {
		d.courses[c.ID] = c
		if c.ID >= d.nextCourseID {
			d.nextCourseID = c.ID + 1
		}
	}

	assignments := []models.Assignment{
		{ID: 1, CourseID: 1, Title: "Problem Set 4", Description: "Integration by parts",
			DueDate: now.Add(36 * time.Hour), Priority: models.PriorityHigh, Status: models.StatusPending, Category: "Homework"},
		{ID: 2, CourseID: 2, Title: "Reading response", DueDate: now.Add(5 * 24 * time.Hour),
			Priority: models.PriorityLow, Status: models.StatusPending},
		{ID: 3, CourseID: 1, Title: "Problem Set 3", DueDate: now.Add(-3 * 24 * time.Hour),
			Priority: models.PriorityMedium, Status: models.StatusCompleted, Category: "Homework"},
		{ID: 4, CourseID: 3, Title: "Lab report 2", Description: "Distillation lab",
			DueDate: now.Add(-24 * time.Hour), Priority: models.PriorityHigh, Status: models.StatusPending},
	}
	for _, a := range assignments {
		d.assignments[a.ID] = a
		if a.ID >= d.nextAssignmentID {
			d.nextAssignmentID = a.ID + 1
		}
	}

	grades := []models.Grade{
		{CourseID: 1, CurrentGrade: 91.5, LetterGrade: "A-", Categories: []models.CategoryGrade{
			{Name: "Homework", Weight: 30, Grade: 94}, {Name: "Midterm", Weight: 30, Grade: 88},
		}, AssignmentIDs: []int{1, 3}},
		{CourseID: 2, CurrentGrade: 84.2, LetterGrade: "B"},
		{CourseID: 3, CurrentGrade: 0},
	}
	for _, g := range grades {
		d.grades[g.CourseID] = g
	}
}

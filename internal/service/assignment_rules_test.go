package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studytrack/studytrack-api/internal/models"
)

var clock = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func pendingDue(id int, due time.Time) models.Assignment {
	return models.Assignment{ID: id, Title: "a", DueDate: due, Status: models.StatusPending, Priority: models.PriorityMedium}
}

func TestStatusVariant(t *testing.T) {
	tests := []struct {
		name    string
		a       models.Assignment
		variant string
	}{
		{"completed wins over past due", models.Assignment{Status: models.StatusCompleted, DueDate: clock.Add(-72 * time.Hour)}, VariantCompleted},
		{"past due", pendingDue(1, clock.Add(-time.Hour)), VariantOverdue},
		{"inside two-day badge window", pendingDue(1, clock.Add(36*time.Hour)), VariantWarning},
		{"outside badge window", pendingDue(1, clock.Add(72*time.Hour)), VariantPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.variant, StatusVariant(tt.a, clock))
		})
	}
}

func TestStatusLabelWindowIsTighterThanBadge(t *testing.T) {
	// 36h out: badge already warns, label still reads Pending.
	a := pendingDue(1, clock.Add(36*time.Hour))
	assert.Equal(t, VariantWarning, StatusVariant(a, clock))
	assert.Equal(t, "Pending", StatusLabel(a, clock))

	// 12h out: both agree.
	b := pendingDue(2, clock.Add(12*time.Hour))
	assert.Equal(t, VariantWarning, StatusVariant(b, clock))
	assert.Equal(t, "Due Soon", StatusLabel(b, clock))
}

func TestCountdown(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		want string
	}{
		{"two days overdue", clock.Add(-48 * time.Hour), "2 days overdue"},
		{"later today", clock.Add(-2 * time.Hour), "Due today"},
		{"exactly now", clock, "Due today"},
		{"within a day", clock.Add(20 * time.Hour), "Due tomorrow"},
		{"three days out", clock.Add(61 * time.Hour), "Due in 3 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Countdown(tt.due, clock))
		})
	}
}

func TestFilterAssignments(t *testing.T) {
	essay := models.Assignment{ID: 1, CourseID: 1, Title: "Essay on Rousseau", Status: models.StatusPending, Priority: models.PriorityHigh, DueDate: clock.Add(-24 * time.Hour)}
	lab := models.Assignment{ID: 2, CourseID: 2, Title: "Lab report", Description: "optics bench", Status: models.StatusPending, Priority: models.PriorityMedium, DueDate: clock.Add(48 * time.Hour)}
	quiz := models.Assignment{ID: 3, CourseID: 1, Title: "Quiz 4", Status: models.StatusCompleted, Priority: models.PriorityLow, DueDate: clock.Add(-96 * time.Hour)}
	all := []models.Assignment{essay, lab, quiz}

	t.Run("search matches title and description, case-insensitive", func(t *testing.T) {
		got := FilterAssignments(all, models.AssignmentFilter{Search: "OPTICS"}, clock)
		assert.Equal(t, []models.Assignment{lab}, got)
	})

	t.Run("overdue means pending and past due", func(t *testing.T) {
		got := FilterAssignments(all, models.AssignmentFilter{Status: models.StatusOverdue}, clock)
		assert.Equal(t, []models.Assignment{essay}, got)
	})

	t.Run("completed past-due work is not overdue", func(t *testing.T) {
		got := FilterAssignments([]models.Assignment{quiz}, models.AssignmentFilter{Status: models.StatusOverdue}, clock)
		assert.Empty(t, got)
	})

	t.Run("all sentinel disables a predicate", func(t *testing.T) {
		got := FilterAssignments(all, models.AssignmentFilter{Status: models.FilterAll, Priority: models.FilterAll}, clock)
		assert.Len(t, got, 3)
	})

	t.Run("predicates combine with AND", func(t *testing.T) {
		got := FilterAssignments(all, models.AssignmentFilter{CourseID: 1, Priority: string(models.PriorityHigh)}, clock)
		assert.Equal(t, []models.Assignment{essay}, got)
	})
}

func TestFilterAssignmentsPredicateOrderIsIrrelevant(t *testing.T) {
	all := []models.Assignment{
		{ID: 1, CourseID: 1, Title: "a", Status: models.StatusPending, Priority: models.PriorityHigh, DueDate: clock.Add(24 * time.Hour)},
		{ID: 2, CourseID: 1, Title: "b", Status: models.StatusCompleted, Priority: models.PriorityHigh, DueDate: clock.Add(-24 * time.Hour)},
		{ID: 3, CourseID: 2, Title: "c", Status: models.StatusPending, Priority: models.PriorityLow, DueDate: clock.Add(48 * time.Hour)},
		{ID: 4, CourseID: 2, Title: "d", Status: models.StatusPending, Priority: models.PriorityHigh, DueDate: clock.Add(72 * time.Hour)},
	}
	status := models.AssignmentFilter{Status: string(models.StatusPending)}
	priority := models.AssignmentFilter{Priority: string(models.PriorityHigh)}

	statusFirst := FilterAssignments(FilterAssignments(all, status, clock), priority, clock)
	priorityFirst := FilterAssignments(FilterAssignments(all, priority, clock), status, clock)
	combined := FilterAssignments(all, models.AssignmentFilter{Status: string(models.StatusPending), Priority: string(models.PriorityHigh)}, clock)

	assert.Equal(t, statusFirst, priorityFirst)
	assert.Equal(t, combined, statusFirst)
	assert.Equal(t, []int{1, 4}, []int{combined[0].ID, combined[1].ID})
}

func TestSortAssignmentsCompletedSinkThenDueDate(t *testing.T) {
	doneEarly := models.Assignment{ID: 1, Status: models.StatusCompleted, DueDate: clock.Add(-96 * time.Hour)}
	dueLater := pendingDue(2, clock.Add(72*time.Hour))
	dueSoon := pendingDue(3, clock.Add(12*time.Hour))

	list := []models.Assignment{doneEarly, dueLater, dueSoon}
	SortAssignments(list)

	assert.Equal(t, []int{3, 2, 1}, []int{list[0].ID, list[1].ID, list[2].ID})
}

func TestSortAssignmentsStableOnEqualDueDates(t *testing.T) {
	due := clock.Add(24 * time.Hour)
	first := pendingDue(10, due)
	second := pendingDue(11, due)

	list := []models.Assignment{first, second}
	SortAssignments(list)

	assert.Equal(t, 10, list[0].ID)
	assert.Equal(t, 11, list[1].ID)
}

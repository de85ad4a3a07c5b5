package service

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/studytrack/studytrack-api/internal/models"
)

// Status presentation values derived from an assignment and the clock.
const (
	VariantCompleted = "completed"
	VariantOverdue   = "overdue"
	VariantWarning   = "warning"
	VariantPending   = "pending"
)

// The badge turns amber two days out while the text switches to "Due Soon"
// only one day out. The windows are intentionally different: the badge is
// an early visual nudge, the label a same-day call to action.
const (
	dueSoonLabelWindow = 24 * time.Hour
	dueSoonBadgeWindow = 48 * time.Hour
)

// StatusVariant derives the badge variant for an assignment.
func StatusVariant(a models.Assignment, now time.Time) string {
	switch {
	case a.Status == models.StatusCompleted:
		return VariantCompleted
	case a.DueDate.Before(now):
		return VariantOverdue
	case a.DueDate.Before(now.Add(dueSoonBadgeWindow)):
		return VariantWarning
	default:
		return VariantPending
	}
}

// StatusLabel derives the textual status for an assignment.
func StatusLabel(a models.Assignment, now time.Time) string {
	switch {
	case a.Status == models.StatusCompleted:
		return "Completed"
	case a.DueDate.Before(now):
		return "Overdue"
	case a.DueDate.Before(now.Add(dueSoonLabelWindow)):
		return "Due Soon"
	default:
		return "Pending"
	}
}

// Countdown renders the human day-delta string for a due date. The delta
// is the due date minus now in days, rounded up.
func Countdown(due, now time.Time) string {
	delta := int(math.Ceil(due.Sub(now).Hours() / 24))
	switch {
	case delta < 0:
		return fmt.Sprintf("%d days overdue", -delta)
	case delta == 0:
		return "Due today"
	case delta == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", delta)
	}
}

// Overdue reports whether a pending assignment's due date has passed.
func Overdue(a models.Assignment, now time.Time) bool {
	return a.Status == models.StatusPending && a.DueDate.Before(now)
}

func matchesFilter(a models.Assignment, filter models.AssignmentFilter, now time.Time) bool {
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		title := strings.ToLower(a.Title)
		description := strings.ToLower(a.Description)
		if !strings.Contains(title, search) && !strings.Contains(description, search) {
			return false
		}
	}

	switch filter.Status {
	case "", models.FilterAll:
	case models.StatusOverdue:
		if !Overdue(a, now) {
			return false
		}
	default:
		if string(a.Status) != filter.Status {
			return false
		}
	}

	if filter.CourseID != 0 && a.CourseID != filter.CourseID {
		return false
	}

	if filter.Priority != "" && filter.Priority != models.FilterAll && string(a.Priority) != filter.Priority {
		return false
	}

	return true
}

// FilterAssignments keeps assignments matching every predicate of the
// filter. Predicates are independent, so application order never changes
// the result.
func FilterAssignments(assignments []models.Assignment, filter models.AssignmentFilter, now time.Time) []models.Assignment {
	filtered := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if matchesFilter(a, filter, now) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// SortAssignments orders assignments for display: completed work sinks to
// the bottom regardless of date, each group ascends by due date, and equal
// due dates keep their input order.
func SortAssignments(assignments []models.Assignment) {
	sort.SliceStable(assignments, func(i, j int) bool {
		a, b := assignments[i], assignments[j]
		aDone := a.Status == models.StatusCompleted
		bDone := b.Status == models.StatusCompleted
		if aDone != bDone {
			return !aDone
		}
		return a.DueDate.Before(b.DueDate)
	})
}

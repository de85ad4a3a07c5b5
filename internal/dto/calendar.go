package dto

import "time"

// CalendarEntry is one assignment pinned to a calendar day.
type CalendarEntry struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	CourseName  string    `json:"courseName"`
	CourseColor string    `json:"courseColor"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"dueDate"`
}

// CalendarDay groups the entries due on a single date.
type CalendarDay struct {
	Date    string          `json:"date"`
	Entries []CalendarEntry `json:"entries"`
}

// CalendarMonthResponse is the month view payload. Days carries only dates
// that have at least one entry, ascending.
type CalendarMonthResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

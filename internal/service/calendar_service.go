package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/studytrack/studytrack-api/internal/dto"
	"github.com/studytrack/studytrack-api/internal/models"
	"github.com/studytrack/studytrack-api/internal/repository"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

// CalendarService buckets assignments into a month view.
type CalendarService struct {
	assignments repository.AssignmentStore
	courses     repository.CourseStore
	logger      *zap.Logger
}

// NewCalendarService constructs a CalendarService.
func NewCalendarService(assignments repository.AssignmentStore, courses repository.CourseStore, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{assignments: assignments, courses: courses, logger: logger}
}

// Month returns the assignments of one calendar month grouped by due date.
// Only dates with at least one entry appear, ascending; entries within a
// day ascend by due time.
func (s *CalendarService) Month(ctx context.Context, year, month int) (*dto.CalendarMonthResponse, error) {
	if month < 1 || month > 12 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "month must be between 1 and 12")
	}
	if year < 1970 || year > 9999 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "year out of range")
	}

	var (
		assignments []models.Assignment
		courses     []models.Course
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assignments, err = s.assignments.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		courses, err = s.courses.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := coursesByID(courses)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	byDay := make(map[string][]dto.CalendarEntry)
	for _, a := range assignments {
		due := a.DueDate.UTC()
		if due.Before(start) || !due.Before(end) {
			continue
		}
		entry := dto.CalendarEntry{
			ID:          a.ID,
			Title:       a.Title,
			CourseName:  unknownCourseName,
			CourseColor: models.DefaultColor,
			Priority:    string(a.Priority),
			Status:      string(a.Status),
			DueDate:     a.DueDate,
		}
		if course, ok := byID[a.CourseID]; ok {
			entry.CourseName = course.Name
			if course.Color != "" {
				entry.CourseColor = course.Color
			}
		}
		day := due.Format("2006-01-02")
		byDay[day] = append(byDay[day], entry)
	}

	days := make([]dto.CalendarDay, 0, len(byDay))
	for date, entries := range byDay {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].DueDate.Before(entries[j].DueDate)
		})
		days = append(days, dto.CalendarDay{Date: date, Entries: entries})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return &dto.CalendarMonthResponse{Year: year, Month: month, Days: days}, nil
}

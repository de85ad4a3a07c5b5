package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studytrack/studytrack-api/internal/dto"
	"github.com/studytrack/studytrack-api/pkg/export"
)

type gradesOverviewProvider interface {
	Overview(ctx context.Context) (*dto.GradesOverviewResponse, bool, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the grade report as a downloadable file.
type ExportService struct {
	grades gradesOverviewProvider
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(grades gradesOverviewProvider, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{grades: grades, logger: logger}
}

var gradeReportColumns = []string{"Course", "Credits", "Grade", "Letter", "Assignments"}

func gradeReportTable(overview *dto.GradesOverviewResponse) export.Table {
	table := export.Table{Columns: gradeReportColumns}
	for _, row := range overview.Courses {
		table.Rows = append(table.Rows, map[string]string{
			"Course":      row.CourseName,
			"Credits":     fmt.Sprintf("%d", row.Credits),
			"Grade":       fmt.Sprintf("%.1f%%", row.CurrentGrade),
			"Letter":      row.LetterGrade,
			"Assignments": fmt.Sprintf("%d/%d", row.AssignmentsCompleted, row.AssignmentsTotal),
		})
	}
	return table
}

// GradeReportCSV renders the per-course grade table as CSV.
func (s *ExportService) GradeReportCSV(ctx context.Context) (*ExportFile, error) {
	overview, _, err := s.grades.Overview(ctx)
	if err != nil {
		return nil, err
	}
	data, err := export.CSV(gradeReportTable(overview))
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("grade-report-%s.csv", uuid.NewString()),
		ContentType: "text/csv",
		Data:        data,
	}, nil
}

// GradeReportPDF renders the per-course grade table as PDF with the GPA
// summary in the title.
func (s *ExportService) GradeReportPDF(ctx context.Context) (*ExportFile, error) {
	overview, _, err := s.grades.Overview(ctx)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Grade Report - GPA %s (%d credits)", overview.Summary.GPA, overview.Summary.TotalCredits)
	data, err := export.PDF(gradeReportTable(overview), title)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("grade-report-%s.pdf", uuid.NewString()),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

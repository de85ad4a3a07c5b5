package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studytrack/studytrack-api/internal/dto"
	"github.com/studytrack/studytrack-api/internal/service"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
	"github.com/studytrack/studytrack-api/pkg/response"
)

// GradeHandler exposes the grades page and grade record endpoints.
type GradeHandler struct {
	grades *service.GradeService
	export *service.ExportService
}

// NewGradeHandler constructs the handler.
func NewGradeHandler(grades *service.GradeService, export *service.ExportService) *GradeHandler {
	return &GradeHandler{grades: grades, export: export}
}

// Overview godoc
// @Summary Grades page: GPA summary plus per-course rows
// @Tags Grades
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /grades [get]
func (h *GradeHandler) Overview(c *gin.Context) {
	overview, cacheHit, err := h.grades.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview, map[string]interface{}{"cacheHit": cacheHit})
}

// Export godoc
// @Summary Download the grade report
// @Tags Grades
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} binary
// @Router /grades/export [get]
func (h *GradeHandler) Export(c *gin.Context) {
	if h.export == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	var (
		file *service.ExportFile
		err  error
	)
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		file, err = h.export.GradeReportCSV(c.Request.Context())
	case "pdf":
		file, err = h.export.GradeReportPDF(c.Request.Context())
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// GetByCourse godoc
// @Summary Get the grade record of one course
// @Tags Grades
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /grades/{courseId} [get]
func (h *GradeHandler) GetByCourse(c *gin.Context) {
	courseID, err := idParam(c, "courseId")
	if err != nil {
		response.Error(c, err)
		return
	}
	grade, err := h.grades.GetByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grade)
}

// Create godoc
// @Summary Register the grade record for a course
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body dto.CreateGradeRequest true "Grade payload"
// @Success 201 {object} response.Envelope
// @Router /grades [post]
func (h *GradeHandler) Create(c *gin.Context) {
	var req dto.CreateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Validation(err))
		return
	}
	created, err := h.grades.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update godoc
// @Summary Patch the grade record of one course
// @Tags Grades
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param payload body dto.UpdateGradeRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /grades/{courseId} [patch]
func (h *GradeHandler) Update(c *gin.Context) {
	courseID, err := idParam(c, "courseId")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Validation(err))
		return
	}
	updated, err := h.grades.Update(c.Request.Context(), courseID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete the grade record of one course
// @Tags Grades
// @Param courseId path int true "Course ID"
// @Success 204 "No Content"
// @Router /grades/{courseId} [delete]
func (h *GradeHandler) Delete(c *gin.Context) {
	courseID, err := idParam(c, "courseId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.grades.Delete(c.Request.Context(), courseID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

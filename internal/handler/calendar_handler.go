package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studytrack/studytrack-api/internal/service"
	"github.com/studytrack/studytrack-api/pkg/response"
)

// CalendarHandler exposes the month view endpoint.
type CalendarHandler struct {
	calendar *service.CalendarService
}

// NewCalendarHandler constructs the handler.
func NewCalendarHandler(calendar *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// Month godoc
// @Summary Assignments of one month grouped by due date
// @Tags Calendar
// @Produce json
// @Param year query int false "Year. Defaults to the current year"
// @Param month query int false "Month 1-12. Defaults to the current month"
// @Success 200 {object} response.Envelope
// @Router /calendar [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	now := time.Now().UTC()
	year, err := intQuery(c, "year", now.Year())
	if err != nil {
		response.Error(c, err)
		return
	}
	month, err := intQuery(c, "month", int(now.Month()))
	if err != nil {
		response.Error(c, err)
		return
	}
	view, err := h.calendar.Month(c.Request.Context(), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

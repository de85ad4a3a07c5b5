package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/studytrack/studytrack-api/internal/repository"
	"github.com/studytrack/studytrack-api/internal/repository/memory"
	"github.com/studytrack/studytrack-api/internal/service"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

type envelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *appErrors.Error       `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// testRouter builds a gin engine backed by a seeded in-memory store with
// the full route set mounted, mirroring the production wiring.
func testRouter(t *testing.T) (*gin.Engine, repository.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := memory.NewDB()
	db.Seed(time.Now())
	stores := db.Stores()

	courseSvc := service.NewCourseService(stores.Courses, stores.Grades, nil, nil)
	assignmentSvc := service.NewAssignmentService(stores.Assignments, stores.Courses, nil, nil)
	gradeSvc := service.NewGradeService(stores.Courses, stores.Assignments, stores.Grades, nil, time.Minute, nil)
	dashboardSvc := service.NewDashboardService(stores.Courses, stores.Assignments, stores.Grades, nil, time.Minute, nil)
	calendarSvc := service.NewCalendarService(stores.Assignments, stores.Courses, nil)
	exportSvc := service.NewExportService(gradeSvc, nil)

	router := gin.New()
	api := router.Group("/api/v1")
	RegisterRoutes(api, Handlers{
		Courses:     NewCourseHandler(courseSvc),
		Assignments: NewAssignmentHandler(assignmentSvc),
		Grades:      NewGradeHandler(gradeSvc, exportSvc),
		Dashboard:   NewDashboardHandler(dashboardSvc),
		Calendar:    NewCalendarHandler(calendarSvc),
	})
	return router, stores
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

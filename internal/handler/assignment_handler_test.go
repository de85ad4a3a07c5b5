package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studytrack/studytrack-api/internal/dto"
)

func TestAssignmentRoutesList(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/assignments", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list dto.AssignmentListResponse
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list.Assignments, 4)
	assert.Equal(t, 4, list.Stats.Total)
	assert.Equal(t, 1, list.Stats.Completed)
}

func TestAssignmentRoutesListFilterByCourse(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/assignments?courseId=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list dto.AssignmentListResponse
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list.Assignments, 2)
	for _, a := range list.Assignments {
		assert.Equal(t, 1, a.CourseID)
	}
}

func TestAssignmentRoutesListCourseWildcard(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/assignments?courseId=all", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list dto.AssignmentListResponse
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list.Assignments, 4)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/assignments?courseId=first", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignmentRoutesCreateRejectsMissingTitle(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/assignments",
		`{"courseId": 1, "dueDate": "2026-01-10T00:00:00Z"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Fields, "Title")
}

func TestAssignmentRoutesCreate(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/assignments",
		`{"courseId": 1, "title": "Problem Set 5", "dueDate": "2026-01-10T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	var created struct {
		ID       int    `json:"id"`
		Priority string `json:"priority"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, "medium", created.Priority)
	assert.Equal(t, "pending", created.Status)
}

func TestAssignmentRoutesStatusToggle(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodPatch, "/api/v1/assignments/1/status",
		`{"status": "completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPatch, "/api/v1/assignments/1/status",
		`{"status": "done"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPatch, "/api/v1/assignments/9999/status",
		`{"status": "completed"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssignmentRoutesDelete(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodDelete, "/api/v1/assignments/2", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/assignments/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

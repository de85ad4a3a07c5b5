package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studytrack/studytrack-api/internal/dto"
)

func TestCourseRoutesListWithStats(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/courses", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list dto.CourseListResponse
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list.Courses, 3)
	assert.Equal(t, 11, list.Stats.TotalCredits)
	assert.Equal(t, 2, list.Stats.GradedCount)
}

func TestCourseRoutesSearch(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/courses?search=sociology", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list dto.CourseListResponse
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list.Courses, 1)
	assert.Equal(t, "Intro to Sociology", list.Courses[0].Name)
}

func TestCourseRoutesInvalidID(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/courses/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCourseRoutesCreateAndGet(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/courses",
		`{"name": "Linear Algebra", "professor": "Dr. Chen", "credits": 3}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/courses/4", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var course struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &course))
	assert.Equal(t, "Linear Algebra", course.Name)
	assert.NotEmpty(t, course.Color)
}

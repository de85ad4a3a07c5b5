package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studytrack/studytrack-api/internal/dto"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

type fakeDashboardSrv struct {
	resp *dto.DashboardResponse
	hit  bool
	err  error
}

func (f *fakeDashboardSrv) Overview(context.Context) (*dto.DashboardResponse, bool, error) {
	return f.resp, f.hit, f.err
}

func TestDashboardHandlerOverview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(&fakeDashboardSrv{
		resp: &dto.DashboardResponse{Stats: dto.DashboardStats{GPA: "3.40", TotalCourses: 3}},
		hit:  true,
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	h.Overview(c)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, true, env.Meta["cacheHit"])

	var resp dto.DashboardResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "3.40", resp.Stats.GPA)
}

func TestDashboardHandlerOverviewUpstreamFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(&fakeDashboardSrv{
		err: appErrors.Clone(appErrors.ErrUnavailable, "record store unreachable"),
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	h.Overview(c)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", env.Error.Code)
}

func TestDashboardRoutesOverview(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.DashboardResponse
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 3, resp.Stats.TotalCourses)
	assert.Equal(t, 4, resp.Stats.TotalAssignments)
	assert.Equal(t, "3.40", resp.Stats.GPA)
	assert.NotEmpty(t, resp.UpcomingAssignments)
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studytrack/studytrack-api/internal/models"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, name+" must be a positive integer")
	}
	return id, nil
}

// intQuery parses an optional integer query parameter, returning fallback
// when absent.
func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, name+" must be an integer")
	}
	return value, nil
}

// filterIDQuery parses an integer filter query parameter. Absence and the
// wildcard "all" both mean no filter.
func filterIDQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" || raw == models.FilterAll {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, name+` must be an integer or "all"`)
	}
	return value, nil
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/LielBuchnik/EmmaTrackerAPI/services"

	"github.com/gin-gonic/gin"
)

// --- shared handler helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// statusForServiceError maps the service error taxonomy to HTTP codes.
func statusForServiceError(err error) int {
	switch {
	case errors.Is(err, services.ErrBabyNotFound),
		errors.Is(err, services.ErrBloodSugarNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotBabyOwner):
		return http.StatusForbidden
	case errors.Is(err, services.ErrLevelOutOfRange),
		errors.Is(err, services.ErrMeasurementTimeRequired),
		errors.Is(err, services.ErrQuantityNotPositive),
		errors.Is(err, services.ErrInvalidTheme),
		errors.Is(err, services.ErrInvalidBabyData),
		errors.Is(err, services.ErrUserExists):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseTimeParam accepts both RFC3339 timestamps and plain dates, which
// is what the date pickers send.
func parseTimeParam(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}

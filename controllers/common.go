package controllers

import (
	"strconv"
	"time"

	"jims/errors"

	"github.com/gin-gonic/gin"
)

// listCacheTTL bounds how stale a cached list can get
const listCacheTTL = 10 * time.Minute

// parsePagination reads the page/limit query params. page is
// zero-based; limit falls back to the route's default.
func parsePagination(c *gin.Context, defaultLimit int) (int, int) {
	page := 0
	limit := defaultLimit

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p >= 0 {
			page = p
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	return page, limit
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// validationMessage unwraps the human-readable part of a validation
// failure for the response body.
func validationMessage(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}

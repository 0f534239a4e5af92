package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schooldir/consts"
	"schooldir/dto"
)

// HandleServiceError maps sentinel domain errors to their HTTP codes and
// forwards anything else to the global error boundary. Returns true when the
// request was answered (or handed off).
func HandleServiceError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, consts.ErrAuthenticationFailed):
		dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized", err.Error())
	case errors.Is(err, consts.ErrNotFound):
		dto.ErrorResponse(c, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, consts.ErrAlreadyExists):
		dto.ErrorResponse(c, http.StatusConflict, "Conflict", err.Error())
	default:
		// Unclassified failures cross unmodified to the error normalizer.
		_ = c.Error(err)
		c.Abort()
	}

	return true
}

// pageParams reads the pagination values from a validated query. Defaults
// apply only when a parameter is absent; a supplied out-of-range value is
// passed through for the service to clamp, so an explicit limit=0 becomes 1,
// not the default page size.
func pageParams(query map[string]any) (int, int) {
	page := consts.DefaultPage
	if v, ok := query["page"].(int); ok {
		page = v
	}
	limit := consts.DefaultPageSize
	if v, ok := query["limit"].(int); ok {
		limit = v
	}
	return page, limit
}

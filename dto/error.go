package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schooldir/validation"
)

// ErrorEnvelope is the single failure shape returned by every error path.
type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

func ErrorResponse(c *gin.Context, code int, label, message string) {
	c.JSON(code, ErrorEnvelope{
		StatusCode: code,
		Error:      label,
		Message:    message,
	})
}

// ValidationErrorResponse renders a structured validation failure as a 400
// envelope with the full ordered entry list under details.
func ValidationErrorResponse(c *gin.Context, verr *validation.Error) {
	c.JSON(http.StatusBadRequest, ErrorEnvelope{
		StatusCode: http.StatusBadRequest,
		Error:      "Validation Error",
		Message:    verr.Message(),
		Details:    verr.Entries,
	})
}

// NotFoundResponse is the minimal 404 body for absent records.
func NotFoundResponse(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

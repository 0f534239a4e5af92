package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"schooldir/config"
	"schooldir/dto"
	"schooldir/validation"
)

// ErrorHandler is the single process-wide error boundary. Every unhandled
// failure, panicking or attached to the gin context, becomes an Error
// Envelope here.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				normalize(c, err)
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			normalize(c, c.Errors.Last().Err)
		}
	}
}

func normalize(c *gin.Context, err error) {
	if c.Writer.Written() {
		return
	}

	// Structured validation failure
	var verr *validation.Error
	if errors.As(err, &verr) {
		dto.ValidationErrorResponse(c, verr)
		return
	}

	// Validation failure that crossed a boundary in serialized form; if
	// re-parsing fails it falls through to the generic handler.
	if entries, ok := parseSerializedEntries(err.Error()); ok {
		dto.ValidationErrorResponse(c, &validation.Error{Entries: entries})
		return
	}

	logrus.WithFields(logrus.Fields{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
		"error":  err.Error(),
	}).Error("Unhandled error")

	message := err.Error()
	if message == "" {
		message = "An unexpected error occurred"
	}

	envelope := dto.ErrorEnvelope{
		StatusCode: http.StatusInternalServerError,
		Error:      "Internal Server Error",
		Message:    message,
	}
	if !config.IsProduction() {
		envelope.Details = strings.Split(string(debug.Stack()), "\n")
	}
	c.JSON(http.StatusInternalServerError, envelope)
}

func parseSerializedEntries(message string) ([]validation.Entry, bool) {
	if !strings.HasPrefix(message, "[") || !strings.Contains(message, `"code":`) {
		return nil, false
	}
	var entries []validation.Entry
	if err := json.Unmarshal([]byte(message), &entries); err != nil {
		return nil, false
	}
	if len(entries) == 0 {
		return nil, false
	}
	return entries, true
}

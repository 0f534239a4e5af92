package validation

import (
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// CheckResponse validates an outbound payload against a response schema.
// A mismatch is logged but never fails the request; the payload is returned
// unmodified either way. Response schemas are a development safety net, not
// a contract enforcement point.
func CheckResponse(schema *Schema, payload any) any {
	if schema == nil {
		return payload
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Warn("Response validation skipped: payload not serializable")
		return payload
	}

	var object map[string]any
	if err := json.Unmarshal(raw, &object); err != nil {
		logrus.WithError(err).Warn("Response validation skipped: payload is not an object")
		return payload
	}

	if _, verr := schema.ValidateMap(object); verr != nil {
		logrus.WithFields(logrus.Fields{
			"message": verr.Message(),
			"entries": verr.Entries,
		}).Warn("Response validation failed")
	}
	return payload
}

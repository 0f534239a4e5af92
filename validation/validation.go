// Package validation implements schema-driven request validation. A Schema is
// a declarative list of field descriptors interpreted by a generic validator:
// raw input is coerced into typed values, and every violated field is
// collected into an ordered error list rather than failing on the first.
package validation

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Kind is the primitive type a field coerces to.
type Kind string

const (
	KindString      Kind = "string"
	KindInt         Kind = "int"
	KindBool        Kind = "bool"
	KindStringSlice Kind = "string_slice"
)

// Symbolic reason codes carried on error entries.
const (
	CodeInvalidType  = "invalid_type"
	CodeTooSmall     = "too_small"
	CodeTooBig       = "too_big"
	CodeInvalidURL   = "invalid_url"
	CodeInvalidUUID  = "invalid_uuid"
	CodeInvalidEnum  = "invalid_enum_value"
	CodeUnrecognized = "unrecognized_keys"
)

// Field declares the constraint set for one input field.
type Field struct {
	Name     string
	Kind     Kind
	Required bool

	// String refinements
	MinLen int
	MaxLen int
	Enum   []string
	// URLSchemes restricts string values to URLs with one of these schemes.
	URLSchemes []string
	// UUID requires the string to be a canonical UUID.
	UUID bool

	// Int refinements
	Positive bool

	// Slice refinements
	MinItems int
}

// Schema is an ordered field list plus object-level rules.
type Schema struct {
	Fields []Field
	// DisallowUnknown rejects keys not declared in Fields.
	DisallowUnknown bool
	// RequireSomeField rejects input where none of the declared fields is
	// present (partial updates must carry at least one field).
	RequireSomeField bool
}

// Entry is a single field violation.
type Entry struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Code     string `json:"code"`
	Received any    `json:"received,omitempty"`
}

// IsMissing reports whether the entry denotes an absent required value, as
// opposed to a present-but-invalid one.
func (e Entry) IsMissing() bool {
	return e.Code == CodeInvalidType && e.Received == nil
}

// Error is the structured outcome of a failed validation. Entries preserve
// schema declaration order.
type Error struct {
	Entries []Entry `json:"entries"`
}

func (e *Error) Error() string {
	return e.Message()
}

// Message lists missing required field paths when any exist; otherwise it is
// the generic invalid-data message.
func (e *Error) Message() string {
	var missing []string
	for _, entry := range e.Entries {
		if entry.IsMissing() {
			missing = append(missing, entry.Field)
		}
	}
	if len(missing) > 0 {
		return "Missing required fields: " + strings.Join(missing, ", ")
	}
	return "Invalid request data"
}

// ValidateMap validates a decoded JSON object (request body) against the
// schema. On success it returns the coerced object; on failure the full
// ordered violation list.
func (s *Schema) ValidateMap(raw map[string]any) (map[string]any, *Error) {
	coerced := make(map[string]any, len(s.Fields))
	var entries []Entry
	present := 0

	for _, field := range s.Fields {
		value, ok := raw[field.Name]
		if !ok || value == nil {
			if field.Required {
				entries = append(entries, Entry{
					Field:   field.Name,
					Message: "Required",
					Code:    CodeInvalidType,
				})
			}
			continue
		}
		present++

		typed, fieldEntries := coerceBodyValue(field, value)
		if len(fieldEntries) > 0 {
			entries = append(entries, fieldEntries...)
			continue
		}
		coerced[field.Name] = typed
	}

	if s.RequireSomeField && present == 0 && len(entries) == 0 {
		entries = append(entries, Entry{
			Field:   "root",
			Message: "At least one field must be provided",
			Code:    CodeTooSmall,
		})
	}

	if s.DisallowUnknown {
		entries = append(entries, s.unknownKeys(raw)...)
	}

	if len(entries) > 0 {
		return nil, &Error{Entries: entries}
	}
	return coerced, nil
}

// ValidateValues validates string-valued input (query or path parameters),
// coercing each present field to its declared kind.
func (s *Schema) ValidateValues(values map[string]string) (map[string]any, *Error) {
	coerced := make(map[string]any, len(s.Fields))
	var entries []Entry

	for _, field := range s.Fields {
		raw, ok := values[field.Name]
		if !ok || raw == "" {
			if field.Required {
				entries = append(entries, Entry{
					Field:   field.Name,
					Message: "Required",
					Code:    CodeInvalidType,
				})
			}
			continue
		}

		switch field.Kind {
		case KindInt:
			n, err := strconv.Atoi(raw)
			if err != nil {
				entries = append(entries, Entry{
					Field:    field.Name,
					Message:  "Expected integer",
					Code:     CodeInvalidType,
					Received: raw,
				})
				continue
			}
			entries = append(entries, checkInt(field, n)...)
			coerced[field.Name] = n
		case KindBool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				entries = append(entries, Entry{
					Field:    field.Name,
					Message:  "Expected boolean",
					Code:     CodeInvalidType,
					Received: raw,
				})
				continue
			}
			coerced[field.Name] = b
		default:
			entries = append(entries, checkString(field, raw)...)
			coerced[field.Name] = raw
		}
	}

	if len(entries) > 0 {
		return nil, &Error{Entries: entries}
	}
	return coerced, nil
}

func (s *Schema) unknownKeys(raw map[string]any) []Entry {
	var unknown []string
	for key := range raw {
		declared := slices.ContainsFunc(s.Fields, func(f Field) bool { return f.Name == key })
		if !declared {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)
	return []Entry{{
		Field:   "root",
		Message: "Unrecognized keys: " + strings.Join(unknown, ", "),
		Code:    CodeUnrecognized,
	}}
}

func coerceBodyValue(field Field, value any) (any, []Entry) {
	switch field.Kind {
	case KindString:
		str, ok := value.(string)
		if !ok {
			return nil, []Entry{typeEntry(field, "Expected string", value)}
		}
		if entries := checkString(field, str); len(entries) > 0 {
			return nil, entries
		}
		return str, nil

	case KindInt:
		n, ok := toInt(value)
		if !ok {
			return nil, []Entry{typeEntry(field, "Expected integer", value)}
		}
		if entries := checkInt(field, n); len(entries) > 0 {
			return nil, entries
		}
		return n, nil

	case KindBool:
		b, ok := value.(bool)
		if !ok {
			return nil, []Entry{typeEntry(field, "Expected boolean", value)}
		}
		return b, nil

	case KindStringSlice:
		items, entries := toStringSlice(field, value)
		if len(entries) > 0 {
			return nil, entries
		}
		if len(items) < field.MinItems {
			return nil, []Entry{{
				Field:    field.Name,
				Message:  fmt.Sprintf("Must contain at least %d item(s)", field.MinItems),
				Code:     CodeTooSmall,
				Received: value,
			}}
		}
		return items, nil
	}

	return value, nil
}

func typeEntry(field Field, message string, received any) Entry {
	return Entry{Field: field.Name, Message: message, Code: CodeInvalidType, Received: received}
}

func checkString(field Field, value string) []Entry {
	var entries []Entry

	if field.MinLen > 0 && len(value) < field.MinLen {
		entries = append(entries, Entry{
			Field:    field.Name,
			Message:  fmt.Sprintf("Must be at least %d character(s)", field.MinLen),
			Code:     CodeTooSmall,
			Received: value,
		})
	}
	if field.MaxLen > 0 && len(value) > field.MaxLen {
		entries = append(entries, Entry{
			Field:    field.Name,
			Message:  fmt.Sprintf("Must be at most %d character(s)", field.MaxLen),
			Code:     CodeTooBig,
			Received: value,
		})
	}
	if len(field.Enum) > 0 && !slices.Contains(field.Enum, value) {
		entries = append(entries, Entry{
			Field:    field.Name,
			Message:  "Invalid value. Expected one of: " + strings.Join(field.Enum, ", "),
			Code:     CodeInvalidEnum,
			Received: value,
		})
	}
	if len(field.URLSchemes) > 0 {
		if !isURLWithScheme(value, field.URLSchemes) {
			entries = append(entries, Entry{
				Field:    field.Name,
				Message:  "Must be a valid URL with scheme: " + strings.Join(field.URLSchemes, ", "),
				Code:     CodeInvalidURL,
				Received: value,
			})
		}
	}
	if field.UUID {
		if _, err := uuid.Parse(value); err != nil {
			entries = append(entries, Entry{
				Field:    field.Name,
				Message:  "Must be a valid UUID",
				Code:     CodeInvalidUUID,
				Received: value,
			})
		}
	}

	return entries
}

func checkInt(field Field, value int) []Entry {
	if field.Positive && value <= 0 {
		return []Entry{{
			Field:    field.Name,
			Message:  "Must be a positive integer",
			Code:     CodeTooSmall,
			Received: value,
		}}
	}
	return nil
}

func isURLWithScheme(value string, schemes []string) bool {
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	return slices.Contains(schemes, parsed.Scheme)
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		// JSON numbers decode as float64; only integral values qualify.
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

func toStringSlice(field Field, value any) ([]string, []Entry) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, []Entry{typeEntry(field, "Expected array of strings", value)}
			}
			items = append(items, str)
		}
		return items, nil
	default:
		return nil, []Entry{typeEntry(field, "Expected array of strings", value)}
	}
}

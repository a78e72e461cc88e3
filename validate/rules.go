// Package validate checks raw form-shaped records against data-driven
// rule tables before they are sent to the remote admin API.
// It performs no I/O; the only output is a normalized record or the
// first violated rule per field.
package validate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind enumerates the primitive shapes a field can take
type Kind int

// The supported field kinds
const (
	String Kind = iota
	Number
	Integer
	Email
	Phone
	Bool
	StringList
)

// maxSafe is the largest magnitude a numeric field may take
// (beyond it, values silently lose integer precision in JSON)
const maxSafe = float64(1 << 53)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]+$`)
)

// Rule describes the constraints on a single form field.
// For numeric kinds Min and Max bound the value; for String they bound
// the trimmed length. The first violated constraint determines the
// field's message.
type Rule struct {
	Field    string
	Kind     Kind
	Optional bool
	Positive bool
	Min      *float64
	Max      *float64
	Default  interface{}
}

// Schema is an ordered rule table for one form shape
type Schema struct {
	Name  string
	Rules []Rule
}

// FieldError reports the first violated rule for a field
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fail(field string, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// Apply validates a raw record against the schema.
// On success it returns a normalized record containing only the
// declared fields: strings trimmed, numbers as float64, defaults
// filled in for absent optional fields.
// A record is acceptable only if every required field passes.
func (s Schema) Apply(record map[string]interface{}) (map[string]interface{}, *FieldError) {
	normalized := make(map[string]interface{}, len(s.Rules))

	for _, rule := range s.Rules {
		raw, present := record[rule.Field]
		if raw == nil {
			present = false
		}

		if !present {
			if rule.Default != nil {
				normalized[rule.Field] = rule.Default
				continue
			}
			if rule.Optional {
				continue
			}
			return nil, fail(rule.Field, missingMessage(rule.Kind))
		}

		value, fieldError := checkField(rule, raw)
		if fieldError != nil {
			return nil, fieldError
		}
		normalized[rule.Field] = value
	}

	return normalized, nil
}

// Validates a single present field against its rule,
// returning the normalized value
func checkField(rule Rule, raw interface{}) (interface{}, *FieldError) {
	switch rule.Kind {
	case String:
		return checkString(rule, raw)
	case Number, Integer:
		return checkNumber(rule, raw)
	case Email:
		value, ok := raw.(string)
		if !ok {
			return nil, fail(rule.Field, "must be a valid email")
		}
		value = strings.TrimSpace(value)
		if !emailPattern.MatchString(value) {
			return nil, fail(rule.Field, "must be a valid email")
		}
		return value, nil
	case Phone:
		value, ok := raw.(string)
		if !ok || !phonePattern.MatchString(value) {
			return nil, fail(rule.Field, "must contain only digits")
		}
		return value, nil
	case Bool:
		value, ok := raw.(bool)
		if !ok {
			return nil, fail(rule.Field, "not a boolean")
		}
		return value, nil
	case StringList:
		return checkStringList(rule, raw)
	}

	return nil, fail(rule.Field, "unsupported field kind")
}

func checkString(rule Rule, raw interface{}) (interface{}, *FieldError) {
	value, ok := raw.(string)
	if !ok {
		return nil, fail(rule.Field, "not a string")
	}

	value = strings.TrimSpace(value)
	if value == "" && !rule.Optional {
		return nil, fail(rule.Field, "cannot be blank")
	}
	if rule.Min != nil && float64(len(value)) < *rule.Min {
		return nil, fail(rule.Field, fmt.Sprintf("must contain at least %d characters", int(*rule.Min)))
	}
	if rule.Max != nil && float64(len(value)) > *rule.Max {
		return nil, fail(rule.Field, fmt.Sprintf("must contain at most %d characters", int(*rule.Max)))
	}

	return value, nil
}

func checkNumber(rule Rule, raw interface{}) (interface{}, *FieldError) {
	value, ok := toFloat(raw)
	if !ok {
		return nil, fail(rule.Field, "not a number")
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return nil, fail(rule.Field, "not a finite number")
	}
	if math.Abs(value) > maxSafe {
		return nil, fail(rule.Field, "outside the safe number range")
	}
	if rule.Kind == Integer && value != math.Trunc(value) {
		return nil, fail(rule.Field, "not an integer number")
	}
	if rule.Positive && value <= 0 {
		return nil, fail(rule.Field, "not a positive number")
	}
	if rule.Min != nil && value < *rule.Min {
		return nil, fail(rule.Field, fmt.Sprintf("must be at least %g", *rule.Min))
	}
	if rule.Max != nil && value > *rule.Max {
		return nil, fail(rule.Field, fmt.Sprintf("must be at most %g", *rule.Max))
	}

	return value, nil
}

func checkStringList(rule Rule, raw interface{}) (interface{}, *FieldError) {
	list, ok := raw.([]interface{})
	if !ok {
		// Already-normalized records may carry []string
		if strings2, ok := raw.([]string); ok {
			list = make([]interface{}, len(strings2))
			for i, s := range strings2 {
				list[i] = s
			}
		} else {
			return nil, fail(rule.Field, "not a list of strings")
		}
	}

	values := make([]string, 0, len(list))
	for _, entry := range list {
		value, ok := entry.(string)
		if !ok {
			return nil, fail(rule.Field, "not a list of strings")
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, fail(rule.Field, "cannot contain blank entries")
		}
		values = append(values, value)
	}

	return values, nil
}

// Coerces form input into a float: JSON numbers arrive as float64,
// HTML form inputs arrive as strings
func toFloat(raw interface{}) (float64, bool) {
	switch value := raw.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}

	return 0, false
}

func missingMessage(kind Kind) string {
	switch kind {
	case Number, Integer:
		return "not a number"
	case Email:
		return "must be a valid email"
	case Phone:
		return "must contain only digits"
	case Bool:
		return "not a boolean"
	case StringList:
		return "cannot be empty"
	}

	return "cannot be blank"
}

// Float is a helper for building rule tables with bound pointers
func Float(value float64) *float64 {
	return &value
}

package validation

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate backs the email rule. Shape-only: no DNS lookups, no
// deliverability checks.
var validate = validator.New()

// Issue describes a single domain-rule failure: a human-readable message and
// the offending field names when more than one field can fail at once.
type Issue struct {
	Message string
	Fields  []string
}

// Check inspects a payload and reports the first issue it finds, or nil.
// Checks are pure; each kind declares an ordered list of them.
type Check func(p Payload) *Issue

// coerceNumber loosely coerces a raw payload value for range comparison.
// Values that do not coerce are skipped by range checks and left for the
// store to refuse, mirroring how the original service compared on numeric
// coercion.
func coerceNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// dateLayouts are the accepted wire formats for date fields. A date is valid
// if it parses to a real calendar instant under any of them.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(v interface{}) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// lookup resolves a possibly dotted path ("nutrition.calories") through
// nested payload maps.
func lookup(p Payload, path string) (interface{}, bool) {
	parts := strings.Split(path, ".")
	var current interface{} = map[string]interface{}(p)
	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Minimum binds a field to its lowest allowed value.
type Minimum struct {
	Field string
	Min   float64
}

// Minimums rejects any listed field whose coerced numeric value is below its
// minimum. Absent fields are skipped; required-ness is the shape stage's
// concern. All offending fields are reported together under one message.
func Minimums(message string, mins ...Minimum) Check {
	return func(p Payload) *Issue {
		var invalid []string
		for _, m := range mins {
			v, ok := lookup(p, m.Field)
			if !ok || v == nil {
				continue
			}
			if n, numeric := coerceNumber(v); numeric && n < m.Min {
				invalid = append(invalid, m.Field)
			}
		}
		if len(invalid) > 0 {
			return &Issue{Message: message, Fields: invalid}
		}
		return nil
	}
}

// Email rejects a field that is present but not shaped like an address.
func Email(field, message string) Check {
	return func(p Payload) *Issue {
		v, ok := p[field]
		if !ok || v == nil {
			return nil
		}
		s, isString := v.(string)
		if !isString || validate.Var(s, "email") != nil {
			return &Issue{Message: message, Fields: []string{field}}
		}
		return nil
	}
}

// DatePair checks that both fields parse and that end is not before start.
// Ordering is only compared once both parse; end equal to start is allowed.
func DatePair(startField, endField, parseMessage, orderMessage string) Check {
	return func(p Payload) *Issue {
		start, startOK := parseDate(p[startField])
		end, endOK := parseDate(p[endField])
		if !startOK || !endOK {
			fields := make([]string, 0, 2)
			if !startOK {
				fields = append(fields, startField)
			}
			if !endOK {
				fields = append(fields, endField)
			}
			return &Issue{Message: parseMessage, Fields: fields}
		}
		if end.Before(start) {
			return &Issue{Message: orderMessage, Fields: []string{endField}}
		}
		return nil
	}
}

// OptionalDate rejects a field that is present but does not parse as a date.
func OptionalDate(field, message string) Check {
	return func(p Payload) *Issue {
		v, ok := p[field]
		if !hasValue(v, ok) {
			return nil
		}
		if _, dateOK := parseDate(v); !dateOK {
			return &Issue{Message: message, Fields: []string{field}}
		}
		return nil
	}
}

// Element checks one element of a sequence, returning a diagnostic or "".
type Element func(i int, elem interface{}) string

// Sequence rejects a field that is absent, not a sequence, or empty, then
// applies the element predicate in order. The first failing element wins.
func Sequence(field, emptyMessage string, element Element) Check {
	return func(p Payload) *Issue {
		items, ok := p[field].([]interface{})
		if !ok || len(items) == 0 {
			return &Issue{Message: emptyMessage, Fields: []string{field}}
		}
		if element == nil {
			return nil
		}
		for i, elem := range items {
			if msg := element(i, elem); msg != "" {
				return &Issue{Message: msg, Fields: []string{field}}
			}
		}
		return nil
	}
}

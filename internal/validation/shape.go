// Package validation implements the pre-commit validation pipeline for write
// requests: required-field shape checks, per-kind domain rules, and batched
// reference resolution against the store. The pipeline only inspects
// payloads; it never normalizes or rewrites them. What it accepts is exactly
// what the mutation layer persists.
package validation

// Payload is an already-parsed request body. Parsing and content negotiation
// are the dispatcher's job; the pipeline only ever sees key/value mappings.
type Payload = map[string]interface{}

// hasValue reports whether a field counts as present: not absent, not nil,
// not an empty string, not an empty sequence.
func hasValue(v interface{}, ok bool) bool {
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case []interface{}:
		return len(t) > 0
	}
	return true
}

// MissingFields returns every required field the payload lacks, in the
// declared order. Reporting all of them at once lets a caller fix the whole
// deficiency in one round trip instead of replaying the request per field.
func MissingFields(payload Payload, required []string) []string {
	var missing []string
	for _, field := range required {
		v, ok := payload[field]
		if !hasValue(v, ok) {
			missing = append(missing, field)
		}
	}
	return missing
}

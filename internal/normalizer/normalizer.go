// Package normalizer turns free-text model completions into typed results.
//
// Decoding happens in two stages. Extract recovers a generic JSON object from
// noisy text (markdown fences, leading or trailing prose). Hint and Detection
// then coerce that object into their result shapes, accepting camelCase and
// snake_case keys and defaulting absent fields instead of failing.
package normalizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformedModelOutput indicates the completion could not be coerced into
// the expected structured shape.
var ErrMalformedModelOutput = errors.New("malformed model output")

const fence = "```"

// Error types the detection prompt asks for.
const (
	ErrorTypeSyntax  = "syntax"
	ErrorTypeRuntime = "runtime"
	ErrorTypeLogical = "logical"
	ErrorTypeNone    = "none"
)

// HintResult is the pedagogical hint returned to the student.
type HintResult struct {
	Broke   string `json:"broke"`
	Concept string `json:"concept"`
	Nudge   string `json:"nudge"`
}

// DetectionResult is the predicted outcome of running the student's code.
type DetectionResult struct {
	HasError     bool   `json:"hasError"`
	ErrorMessage string `json:"errorMessage"`
	ErrorType    string `json:"errorType"`
}

// KnownErrorType reports whether t is one of the error types the prompt offers.
func KnownErrorType(t string) bool {
	switch t {
	case ErrorTypeSyntax, ErrorTypeRuntime, ErrorTypeLogical, ErrorTypeNone:
		return true
	default:
		return false
	}
}

// StripFences removes a leading fence line (optionally tagged, e.g. ```json)
// and a trailing closing fence.
func StripFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if !strings.HasPrefix(cleaned, fence) {
		return cleaned
	}

	if idx := strings.IndexByte(cleaned, '\n'); idx >= 0 {
		cleaned = cleaned[idx+1:]
	} else {
		cleaned = strings.TrimPrefix(cleaned, fence)
	}

	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, fence)
	return strings.TrimSpace(cleaned)
}

// Extract locates the JSON object embedded in a completion and decodes it.
func Extract(raw string) (map[string]any, error) {
	cleaned := StripFences(raw)

	start := strings.IndexByte(cleaned, '{')
	end := strings.LastIndexByte(cleaned, '}')
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no json object found", ErrMalformedModelOutput)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: empty object", ErrMalformedModelOutput)
	}

	return payload, nil
}

// Hint decodes a hint completion. Individually missing fields become empty
// strings; a payload carrying none of them is rejected.
func Hint(raw string) (HintResult, error) {
	payload, err := Extract(raw)
	if err != nil {
		return HintResult{}, err
	}

	broke, hasBroke := lookup(payload, "broke", "what_broke", "whatBroke")
	concept, hasConcept := lookup(payload, "concept", "cs_concept", "csConcept")
	nudge, hasNudge := lookup(payload, "nudge", "hint", "next_step", "nextStep")
	if !hasBroke && !hasConcept && !hasNudge {
		return HintResult{}, fmt.Errorf("%w: no hint fields present", ErrMalformedModelOutput)
	}

	return HintResult{
		Broke:   strings.TrimSpace(asString(broke)),
		Concept: strings.TrimSpace(asString(concept)),
		Nudge:   strings.TrimSpace(asString(nudge)),
	}, nil
}

// Detection decodes an error detection completion. When hasError is false the
// error message is always cleared, whatever the model put there. Unknown error
// types are passed through untouched.
func Detection(raw string) (DetectionResult, error) {
	payload, err := Extract(raw)
	if err != nil {
		return DetectionResult{}, err
	}

	hasErrorValue, _ := lookup(payload, "hasError", "has_error")
	messageValue, _ := lookup(payload, "errorMessage", "error_message")
	typeValue, hasType := lookup(payload, "errorType", "error_type")

	result := DetectionResult{
		HasError:  asBool(hasErrorValue),
		ErrorType: strings.TrimSpace(asString(typeValue)),
	}
	if !hasType || result.ErrorType == "" {
		result.ErrorType = ErrorTypeNone
	}

	if result.HasError {
		result.ErrorMessage = strings.TrimSpace(asString(messageValue))
	}

	return result, nil
}

// lookup returns the first key present, falling back to a case-insensitive
// match so "HasError" or "ERROR_TYPE" still resolve. Among several
// case-insensitive matches the lexically smallest key wins.
func lookup(payload map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := payload[key]; ok {
			return value, true
		}
	}

	candidates := make([]string, 0, len(payload))
	for candidate := range payload {
		candidates = append(candidates, candidate)
	}
	sort.Strings(candidates)

	for _, key := range keys {
		for _, candidate := range candidates {
			if strings.EqualFold(candidate, key) {
				return payload[candidate], true
			}
		}
	}
	return nil, false
}

func asString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(asString(item)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

func asBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
		return err == nil && parsed
	case float64:
		return v != 0
	default:
		return false
	}
}

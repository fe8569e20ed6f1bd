package justargs

import (
	"fmt"
	"strings"
)

// ErrorType classifies the syntax errors reported by Parse.
type ErrorType string

const (
	ErrorTypeUnknownSwitch   ErrorType = "unknown_switch"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeUnexpectedValue ErrorType = "unexpected_value"
	ErrorTypeBatchOrder      ErrorType = "batch_order"
)

// SyntaxError reports a token sequence that is malformed relative to the
// registry: an unrecognized switch, an option without a value, a value
// attached to a flag, or an option embedded mid-batch. Parsing stops at the
// first such token and no partial result is returned.
type SyntaxError struct {
	Type    ErrorType
	Index   int    // zero-based index of the offending token
	Message string

	// Suggestion holds the closest registered switch name when the error is
	// an unrecognized switch and a near miss exists. May be empty.
	Suggestion string
}

func (e *SyntaxError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (did you mean --%s?)", e.Message, e.Suggestion)
	}
	return e.Message
}

// ConfigError reports switch keys registered in more than one of the three
// short maps or more than one of the three long maps. It reflects a bug in
// the calling program rather than bad input, and is detected before any token
// is scanned. Both key sets are sorted.
type ConfigError struct {
	ShortKeys []rune
	LongKeys  []string
}

func (e *ConfigError) Error() string {
	var parts []string
	if len(e.ShortKeys) > 0 {
		parts = append(parts, fmt.Sprintf("duplicate short switch keys: %q", string(e.ShortKeys)))
	}
	if len(e.LongKeys) > 0 {
		parts = append(parts, fmt.Sprintf("duplicate long switch keys: %v", e.LongKeys))
	}
	return strings.Join(parts, "; ")
}

// ArgumentError reports a missing or invalid required input to Parse, such as
// a nil token sequence, a nil registry map, or a negative positional cap.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return "justargs: " + e.Name + " " + e.Reason
}

package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidParameter marks a caller error: a required parameter is missing
// or a parameter has the wrong type or range. No computation has been done.
var ErrInvalidParameter = errors.New("invalid parameter")

// ValidationError carries the failing field -> rule map of a parameter record.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s (%s)", k, e.Fields[k]))
	}
	return ErrInvalidParameter.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameter
}

func InvalidParameter(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

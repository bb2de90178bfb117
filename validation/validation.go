// Package validation checks mutation and query inputs field by field
// before they reach the service layer.
package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	MinPasswordLength = 8
	MaxNameLength     = 100
	MaxBioLength      = 500
	MaxNotesLength    = 1000

	DefaultPageSize = 10
	MaxPageSize     = 100
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	timePattern  = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// FieldErrors maps a field name to what is wrong with it.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return strings.Join(parts, "; ")
}

// OrNil returns nil when no field failed, so callers can use the usual
// err != nil check.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func validClockTime(s string) bool {
	return timePattern.MatchString(s)
}

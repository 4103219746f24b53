package validation

import (
	"sort"
	"strings"
)

// Errors collects per-field validation failures. A record is accepted only
// when every required field passes; callers receive the complete set of
// failure reasons, not just the first.
type Errors map[string]string

// Check runs a field validator and records its failure, if any. The first
// recorded failure per field wins.
func (e Errors) Check(field string, err error) {
	if err == nil {
		return
	}
	if _, exists := e[field]; !exists {
		e[field] = err.Error()
	}
}

// Empty reports whether every checked field passed.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Error implements the error interface with a stable field order.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(e[field])
	}
	return b.String()
}

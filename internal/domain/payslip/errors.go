package payslip

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrRecordNotFound        = errors.New("payslip record not found")
	ErrDuplicateContribution = errors.New("record already added to year-to-date set")
	ErrUnknownFrequency      = errors.New("unknown pay frequency")
	ErrUnknownPeriodPreset   = errors.New("unknown pay period preset")
)

// Issue is a single violated validation rule.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError collects every violated rule for one payslip so callers can
// surface all of them at once rather than just the first.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Reason))
	}
	return "payslip validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, reason string) {
	e.Issues = append(e.Issues, Issue{Field: field, Reason: reason})
}

func (e *ValidationError) sorted() *ValidationError {
	sort.SliceStable(e.Issues, func(i, j int) bool {
		if e.Issues[i].Field == e.Issues[j].Field {
			return e.Issues[i].Reason < e.Issues[j].Reason
		}
		return e.Issues[i].Field < e.Issues[j].Field
	})
	return e
}

package shared

import "time"

// ParseDate reads the two date shapes this API receives: the period pickers
// post plain YYYY-MM-DD days, and drafts restored by the frontend carry full
// RFC3339 stamps. An empty value maps to the zero time so optional date
// fields stay optional.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

package payslip

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is a derived pay period. Key is the YYYY-MM bucket taken from the
// start date; a weekly or biweekly period spanning a month boundary is
// attributed entirely to its start month.
type Period struct {
	Start time.Time `json:"payPeriodStart"`
	End   time.Time `json:"payPeriodEnd"`
	Key   string    `json:"period"`
}

// PeriodFor derives the pay period containing the reference date for the
// given frequency. FrequencyCustom has no automatic derivation; callers
// supply dates directly or seed them from PeriodPreset.
func PeriodFor(frequency string, reference time.Time) (Period, error) {
	ref := truncateDay(reference)
	switch frequency {
	case FrequencyWeekly:
		start := weekMonday(ref)
		return newPeriod(start, start.AddDate(0, 0, 6)), nil
	case FrequencyBiWeekly:
		start := weekMonday(ref)
		return newPeriod(start, start.AddDate(0, 0, 13)), nil
	case FrequencyMonthly:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return newPeriod(start, monthEnd(start)), nil
	case FrequencyQuarterly:
		qMonth := time.Month((int(ref.Month())-1)/3*3 + 1)
		start := time.Date(ref.Year(), qMonth, 1, 0, 0, 0, 0, ref.Location())
		end := start.AddDate(0, 3, 0).AddDate(0, 0, -1)
		return newPeriod(start, end), nil
	case FrequencyCustom:
		return Period{}, fmt.Errorf("%w: custom periods take explicit dates", ErrUnknownFrequency)
	}
	return Period{}, fmt.Errorf("%w: %q", ErrUnknownFrequency, frequency)
}

// PeriodPreset seeds custom period dates from a named shortcut.
func PeriodPreset(name string, reference time.Time) (Period, error) {
	ref := truncateDay(reference)
	switch name {
	case PresetLastWeek:
		start := weekMonday(ref).AddDate(0, 0, -7)
		return newPeriod(start, start.AddDate(0, 0, 6)), nil
	case PresetThisMonth:
		return PeriodFor(FrequencyMonthly, ref)
	case PresetLastMonth:
		return PeriodFor(FrequencyMonthly, ref.AddDate(0, 0, -ref.Day()))
	case PresetCustomQuarter:
		return PeriodFor(FrequencyQuarterly, ref)
	}
	return Period{}, fmt.Errorf("%w: %q", ErrUnknownPeriodPreset, name)
}

// CustomPeriod normalizes caller-supplied dates into a Period.
func CustomPeriod(start, end time.Time) Period {
	return newPeriod(truncateDay(start), truncateDay(end))
}

// PeriodKey is the YYYY-MM bucketing key derived from a start date.
func PeriodKey(start time.Time) string {
	return fmt.Sprintf("%04d-%02d", start.Year(), int(start.Month()))
}

// PeriodNumber extracts the 1-based calendar month from a YYYY-MM key. It
// feeds the automatic year-to-date multiplier; malformed keys count as the
// first period rather than failing the whole computation.
func PeriodNumber(key string) int {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 1
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 1
	}
	return month
}

func newPeriod(start, end time.Time) Period {
	return Period{Start: start, End: end, Key: PeriodKey(start)}
}

// weekMonday returns the Monday of the ISO-like week containing d; a Sunday
// belongs to the week started by the previous Monday.
func weekMonday(d time.Time) time.Time {
	offset := int(time.Monday - d.Weekday())
	if d.Weekday() == time.Sunday {
		offset = -6
	}
	return d.AddDate(0, 0, offset)
}

// monthEnd computes the last calendar day of start's month via day zero of
// the next month.
func monthEnd(start time.Time) time.Time {
	return time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, start.Location())
}

func truncateDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

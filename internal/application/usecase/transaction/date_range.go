// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"
)

// RangePreset selects how a filter date range is resolved relative to "today".
type RangePreset string

const (
	RangePresetAll     RangePreset = ""
	RangePresetWeek    RangePreset = "week"
	RangePresetMonth   RangePreset = "month"
	RangePresetQuarter RangePreset = "quarter"
	RangePresetYear    RangePreset = "year"
	RangePresetCustom  RangePreset = "custom"
)

// DateRange is an inclusive [Start, End] day interval. A nil bound means unbounded.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ResolveDateRange turns a preset into concrete inclusive day bounds.
//
// week is the Sunday-start 7-day window containing today; month, quarter and
// year are the calendar periods containing today; custom uses the supplied
// bounds as-is. An unknown or empty preset yields an unbounded range.
func ResolveDateRange(preset RangePreset, today time.Time, customStart, customEnd *time.Time) DateRange {
	loc := today.Location()
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	switch preset {
	case RangePresetWeek:
		start := day.AddDate(0, 0, -int(day.Weekday()))
		end := start.AddDate(0, 0, 6)
		return DateRange{Start: &start, End: &end}

	case RangePresetMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, loc)
		end := start.AddDate(0, 1, -1)
		return DateRange{Start: &start, End: &end}

	case RangePresetQuarter:
		quarter := (int(day.Month()) - 1) / 3
		start := time.Date(day.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, loc)
		end := start.AddDate(0, 3, -1)
		return DateRange{Start: &start, End: &end}

	case RangePresetYear:
		start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, loc)
		end := time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, loc)
		return DateRange{Start: &start, End: &end}

	case RangePresetCustom:
		return DateRange{Start: customStart, End: customEnd}
	}

	return DateRange{}
}

// Contains reports whether the given calendar date falls inside the range.
// Only the date component is compared; bounds are inclusive.
func (r DateRange) Contains(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if r.Start != nil {
		start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(start) {
			return false
		}
	}
	if r.End != nil {
		end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)
		if day.After(end) {
			return false
		}
	}
	return true
}

package transaction

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveDateRange(t *testing.T) {
	// Wednesday, 15 January 2025.
	today := date(2025, time.January, 15)

	tests := []struct {
		name      string
		preset    RangePreset
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "week starts on sunday",
			preset:    RangePresetWeek,
			wantStart: date(2025, time.January, 12),
			wantEnd:   date(2025, time.January, 18),
		},
		{
			name:      "month covers the calendar month",
			preset:    RangePresetMonth,
			wantStart: date(2025, time.January, 1),
			wantEnd:   date(2025, time.January, 31),
		},
		{
			name:      "quarter covers the calendar quarter",
			preset:    RangePresetQuarter,
			wantStart: date(2025, time.January, 1),
			wantEnd:   date(2025, time.March, 31),
		},
		{
			name:      "year covers the calendar year",
			preset:    RangePresetYear,
			wantStart: date(2025, time.January, 1),
			wantEnd:   date(2025, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDateRange(tt.preset, today, nil, nil)
			if got.Start == nil || got.End == nil {
				t.Fatalf("ResolveDateRange() returned unbounded range")
			}
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", got.End, tt.wantEnd)
			}
		})
	}

	t.Run("week when today is sunday", func(t *testing.T) {
		sunday := date(2025, time.January, 12)
		got := ResolveDateRange(RangePresetWeek, sunday, nil, nil)
		if !got.Start.Equal(sunday) {
			t.Errorf("start = %v, want %v", got.Start, sunday)
		}
		if !got.End.Equal(date(2025, time.January, 18)) {
			t.Errorf("end = %v, want %v", got.End, date(2025, time.January, 18))
		}
	})

	t.Run("custom uses the supplied bounds", func(t *testing.T) {
		start := date(2024, time.July, 1)
		end := date(2024, time.July, 15)
		got := ResolveDateRange(RangePresetCustom, today, &start, &end)
		if got.Start == nil || !got.Start.Equal(start) {
			t.Errorf("start = %v, want %v", got.Start, start)
		}
		if got.End == nil || !got.End.Equal(end) {
			t.Errorf("end = %v, want %v", got.End, end)
		}
	})

	t.Run("empty preset is unbounded", func(t *testing.T) {
		got := ResolveDateRange(RangePresetAll, today, nil, nil)
		if got.Start != nil || got.End != nil {
			t.Errorf("ResolveDateRange() = %+v, want unbounded", got)
		}
	})
}

func TestDateRangeContains(t *testing.T) {
	start := date(2025, time.January, 1)
	end := date(2025, time.January, 31)
	r := DateRange{Start: &start, End: &end}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"start boundary is inclusive", start, true},
		{"end boundary is inclusive", end, true},
		{"inside", date(2025, time.January, 15), true},
		{"before", date(2024, time.December, 31), false},
		{"after", date(2025, time.February, 1), false},
		{"time of day is ignored", time.Date(2025, time.January, 31, 23, 59, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.date); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}

	t.Run("unbounded range contains everything", func(t *testing.T) {
		unbounded := DateRange{}
		if !unbounded.Contains(date(1990, time.June, 1)) {
			t.Error("unbounded range should contain any date")
		}
	})
}

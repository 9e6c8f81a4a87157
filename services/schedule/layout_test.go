package schedule

import (
	"testing"
	"time"
)

// A 10-day window rendered 1000px wide gives a 100px day, which keeps
// the expected geometry exact.
var (
	windowStart = date(2025, time.December, 1)
	windowWidth = 1000.0
	windowDays  = 10
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantLeft  float64
		wantWidth float64
	}{
		{
			name:  "two-night stay inside the window",
			start: date(2025, time.December, 3),
			end:   date(2025, time.December, 5),
			// bar runs from the midpoint of day 3 to the midpoint of day 5
			wantLeft:  250,
			wantWidth: 200,
		},
		{
			name:      "one-night stay on the first day",
			start:     date(2025, time.December, 1),
			end:       date(2025, time.December, 2),
			wantLeft:  50,
			wantWidth: 100,
		},
		{
			name:  "stay starting before the window",
			start: date(2025, time.November, 28),
			end:   date(2025, time.December, 3),
			// clipped bar runs from the window edge to the end midpoint
			wantLeft:  0,
			wantWidth: 250,
		},
		{
			name:      "stay ending on the first window day",
			start:     date(2025, time.November, 28),
			end:       date(2025, time.December, 1),
			wantLeft:  0,
			wantWidth: 50,
		},
		{
			name:      "stay running past the window end",
			start:     date(2025, time.December, 8),
			end:       date(2025, time.December, 15),
			wantLeft:  750,
			wantWidth: 700,
		},
		{
			name:      "stay entirely before the window clamps to zero width",
			start:     date(2025, time.November, 20),
			end:       date(2025, time.November, 25),
			wantLeft:  0,
			wantWidth: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := stay(tc.start, tc.end)
			got := Layout(b, windowStart, windowWidth, windowDays)
			if got.Left != tc.wantLeft || got.Width != tc.wantWidth {
				t.Fatalf("expected left=%v width=%v, got left=%v width=%v",
					tc.wantLeft, tc.wantWidth, got.Left, got.Width)
			}
		})
	}
}

func TestLayoutUnmeasuredWindow(t *testing.T) {
	b := stay(date(2025, time.December, 3), date(2025, time.December, 5))

	for _, tc := range []struct {
		name     string
		widthPx  float64
		dayCount int
	}{
		{"zero days", 1000, 0},
		{"negative days", 1000, -1},
		{"zero width", 0, 10},
		{"negative width", -100, 10},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := Layout(b, windowStart, tc.widthPx, tc.dayCount)
			if got.Left != 0 || got.Width != 0 {
				t.Fatalf("expected zero geometry, got left=%v width=%v", got.Left, got.Width)
			}
		})
	}
}

func TestLayoutIgnoresTimeOfDay(t *testing.T) {
	b := stay(
		time.Date(2025, time.December, 3, 16, 30, 0, 0, time.UTC),
		time.Date(2025, time.December, 5, 9, 0, 0, 0, time.UTC),
	)
	got := Layout(b, windowStart.Add(6*time.Hour), windowWidth, windowDays)
	if got.Left != 250 || got.Width != 200 {
		t.Fatalf("expected left=250 width=200, got left=%v width=%v", got.Left, got.Width)
	}
}

func TestViewStatePeriod(t *testing.T) {
	v := ViewState{
		Anchor:  date(2025, time.December, 17),
		Mode:    ViewModeMonth,
		WidthPx: 1240,
	}
	p := v.Period()
	if !p.Start.Equal(date(2025, time.December, 1)) || !p.End.Equal(date(2025, time.December, 31)) {
		t.Fatalf("expected December window, got %v-%v", p.Start, p.End)
	}
}

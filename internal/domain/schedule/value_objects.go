package schedule

import (
	"errors"
	"fmt"
	"time"
)

// TimeWindow is a half-open interval [start, end). A shift ending at 17:00
// does not conflict with one starting at 17:00.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, errors.New("window start must be before end")
	}

	return TimeWindow{
		start: start,
		end:   end,
	}, nil
}

// ReconstructTimeWindow rebuilds a window from storage without validation.
func ReconstructTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{start: start, end: end}
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps implements the half-open overlap test:
// start1 < end2 AND end1 > start2.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && w.end.After(other.start)
}

func (w TimeWindow) IsZero() bool {
	return w.start.IsZero() && w.end.IsZero()
}

func (w TimeWindow) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

type Notes struct {
	value string
}

func NewNotes(value string) Notes {
	return Notes{value: value}
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}

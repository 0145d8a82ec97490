package reservation

import (
	"time"
)

// TimeSlot is a half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

// ValidateNotPastAt rejects slots starting before now.
func (ts TimeSlot) ValidateNotPastAt(now time.Time) error {
	if ts.start.Before(now) {
		return ErrStartInPast
	}
	return nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

// EndsBy reports end <= t.
func (ts TimeSlot) EndsBy(t time.Time) bool {
	return !ts.end.After(t)
}

type Comment struct {
	value string
}

func NewComment(value string) (Comment, error) {
	if len([]rune(value)) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: value}, nil
}

func (c Comment) String() string {
	return c.value
}

func (c Comment) IsEmpty() bool {
	return c.value == ""
}

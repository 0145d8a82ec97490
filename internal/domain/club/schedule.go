package club

import (
	"errors"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

var (
	ErrInvalidRule      = errors.New("invalid recurrence rule")
	ErrInvalidDuration  = errors.New("session duration must be positive")
	ErrMissingFirstTime = errors.New("first session start is required")
)

// Schedule is an RFC 5545 recurrence rule anchored at the first session.
type Schedule struct {
	rule     string
	startAt  time.Time
	duration time.Duration
}

type Occurrence struct {
	Start time.Time
	End   time.Time
}

func NewSchedule(rule string, startAt time.Time, duration time.Duration) (Schedule, error) {
	rule = strings.TrimPrefix(strings.TrimSpace(rule), "RRULE:")
	if startAt.IsZero() {
		return Schedule{}, ErrMissingFirstTime
	}
	if duration <= 0 {
		return Schedule{}, ErrInvalidDuration
	}
	if _, err := rrule.StrToRRule(rule); err != nil {
		return Schedule{}, errors.Join(ErrInvalidRule, err)
	}
	return Schedule{rule: rule, startAt: startAt, duration: duration}, nil
}

func ReconstructSchedule(rule string, startAt time.Time, duration time.Duration) Schedule {
	return Schedule{rule: rule, startAt: startAt, duration: duration}
}

func (s Schedule) Rule() string            { return s.rule }
func (s Schedule) StartAt() time.Time      { return s.startAt }
func (s Schedule) Duration() time.Duration { return s.duration }

// Occurrences lists sessions starting in [from, to).
func (s Schedule) Occurrences(from, to time.Time) []Occurrence {
	r, err := rrule.StrToRRule(s.rule)
	if err != nil {
		return nil
	}
	r.DTStart(s.startAt)

	loc := s.startAt.Location()
	starts := r.Between(from.In(loc), to.In(loc), true)

	out := make([]Occurrence, 0, len(starts))
	for _, start := range starts {
		if !start.Before(to) {
			continue
		}
		out = append(out, Occurrence{Start: start, End: start.Add(s.duration)})
	}
	return out
}

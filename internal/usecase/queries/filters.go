package queries

import (
	"time"
)

// TimeRange bounds a column strictly on both ends; nil bounds are open.
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

func (r TimeRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Name filters match the referenced catalog entry exactly.

type ReservationFilters struct {
	PlaceName string
	Start     TimeRange
	End       TimeRange
	Created   TimeRange
}

type EventFilters struct {
	TypeName string
	Scope    string
	Start    TimeRange
	Created  TimeRange
}

type AssignmentFilters struct {
	TypeName  string
	PlaceName string
	State     string
	Deadline  TimeRange
	Created   TimeRange
}

type ClubFilters struct {
	TypeName    string
	TeacherName string
	PlaceName   string
}

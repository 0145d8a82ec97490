package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AreaRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ReservationView struct {
	ID         uuid.UUID `json:"id"`
	EventID    uuid.UUID `json:"event_id"`
	EventTitle string    `json:"event_title"`
	PlaceID    uuid.UUID `json:"place_id"`
	PlaceName  string    `json:"place_name"`
	// Empty when the whole place is booked
	Areas     []AreaRef `json:"areas"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type EventView struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Scope       string     `json:"scope"`
	TypeID      *uuid.UUID `json:"type_id,omitempty"`
	TypeName    string     `json:"type_name"`
	StartAt     time.Time  `json:"start_at"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AssignmentView struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	EventID     *uuid.UUID `json:"event_id,omitempty"`
	EventTitle  string     `json:"event_title"`
	TypeID      *uuid.UUID `json:"type_id,omitempty"`
	TypeName    string     `json:"type_name"`
	PlaceID     *uuid.UUID `json:"place_id,omitempty"`
	PlaceName   string     `json:"place_name"`
	Deadline    time.Time  `json:"deadline"`
	State       string     `json:"state"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ClubView struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	TypeID          *uuid.UUID `json:"type_id,omitempty"`
	TypeName        string     `json:"type_name"`
	TeacherID       *uuid.UUID `json:"teacher_id,omitempty"`
	TeacherName     string     `json:"teacher_name"`
	PlaceID         *uuid.UUID `json:"place_id,omitempty"`
	PlaceName       string     `json:"place_name"`
	RRule           string     `json:"rrule"`
	FirstStartAt    time.Time  `json:"first_start_at"`
	DurationMinutes int        `json:"duration_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
}

type AvailablePlace struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	HasAreas bool      `json:"has_areas"`
}

type AreaOption struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Enabled bool      `json:"enabled"`
}

type SessionView struct {
	ClubID      uuid.UUID `json:"club_id"`
	ClubName    string    `json:"club_name"`
	TeacherName string    `json:"teacher_name"`
	PlaceName   string    `json:"place_name"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Label       string    `json:"label"`
}

type DayView struct {
	Name     string        `json:"name"`
	Date     time.Time     `json:"date"`
	Sessions []SessionView `json:"sessions"`
}

type WeekView struct {
	WeekStart time.Time `json:"week_start"`
	Days      []DayView `json:"days"`
}

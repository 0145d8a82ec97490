package response

import (
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/usecase/queries"
)

type ClubResponse struct {
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

func FromClubView(v *queries.ClubView) (*ClubResponse, error) {
	return copyOne[*queries.ClubView, ClubResponse](v)
}

func FromClubViews(vs []*queries.ClubView) ([]ClubResponse, error) {
	return copyAll[*queries.ClubView, ClubResponse](vs)
}

type SessionResponse struct {
	ClubID      uuid.UUID `json:"club_id"`
	ClubName    string    `json:"club_name"`
	TeacherName string    `json:"teacher_name"`
	PlaceName   string    `json:"place_name"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Label       string    `json:"label"`
}

type DayResponse struct {
	Name     string            `json:"name"`
	Date     time.Time         `json:"date"`
	Sessions []SessionResponse `json:"sessions"`
}

type WeekResponse struct {
	WeekStart time.Time     `json:"week_start"`
	Days      []DayResponse `json:"days"`
}

func FromWeekView(v *queries.WeekView) (*WeekResponse, error) {
	res, err := copyOne[*queries.WeekView, WeekResponse](v)
	if err != nil {
		return nil, err
	}
	for i := range res.Days {
		if res.Days[i].Sessions == nil {
			res.Days[i].Sessions = []SessionResponse{}
		}
	}
	return res, nil
}

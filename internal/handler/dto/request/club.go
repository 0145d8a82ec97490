package request

import (
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/queries"
)

type CreateClubRequest struct {
	Name            string     `json:"name" binding:"required"`
	TypeID          *uuid.UUID `json:"type_id"`
	TeacherID       *uuid.UUID `json:"teacher_id"`
	PlaceID         *uuid.UUID `json:"place_id"`
	RRule           string     `json:"rrule" binding:"required"`
	FirstStartAt    time.Time  `json:"first_start_at" binding:"required"`
	DurationMinutes int        `json:"duration_minutes" binding:"required,min=1"`
}

func (r CreateClubRequest) ToCommand() commands.CreateClubRequest {
	return commands.CreateClubRequest{
		Name:            r.Name,
		TypeID:          r.TypeID,
		TeacherID:       r.TeacherID,
		PlaceID:         r.PlaceID,
		RRule:           r.RRule,
		FirstStartAt:    r.FirstStartAt,
		DurationMinutes: r.DurationMinutes,
	}
}

type UpdateClubRequest struct {
	Name            *string    `json:"name"`
	TypeID          *uuid.UUID `json:"type_id"`
	ClearType       bool       `json:"clear_type"`
	TeacherID       *uuid.UUID `json:"teacher_id"`
	ClearTeacher    bool       `json:"clear_teacher"`
	PlaceID         *uuid.UUID `json:"place_id"`
	ClearPlace      bool       `json:"clear_place"`
	RRule           *string    `json:"rrule"`
	FirstStartAt    *time.Time `json:"first_start_at"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,min=1"`
}

func (r UpdateClubRequest) ToCommand() commands.UpdateClubRequest {
	return commands.UpdateClubRequest{
		Name:            r.Name,
		TypeID:          r.TypeID,
		ClearType:       r.ClearType,
		TeacherID:       r.TeacherID,
		ClearTeacher:    r.ClearTeacher,
		PlaceID:         r.PlaceID,
		ClearPlace:      r.ClearPlace,
		RRule:           r.RRule,
		FirstStartAt:    r.FirstStartAt,
		DurationMinutes: r.DurationMinutes,
	}
}

type ClubListQuery struct {
	ListQuery
	TypeName    string `form:"type"`
	TeacherName string `form:"teacher"`
	PlaceName   string `form:"place"`
}

func (q ClubListQuery) Filters() queries.ClubFilters {
	return queries.ClubFilters{
		TypeName:    q.TypeName,
		TeacherName: q.TeacherName,
		PlaceName:   q.PlaceName,
	}
}

// WeekQuery selects the week containing Week; empty means the current week.
type WeekQuery struct {
	Week *time.Time `form:"week" time_format:"2006-01-02"`
}

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "venue-desk/internal/handler/dto/request"
	"venue-desk/internal/handler/httperr"
	"venue-desk/internal/pkg/clock"
	"venue-desk/internal/usecase/queries"
)

type ExportHandler struct {
	q     queries.ExportQueries
	clock clock.Clock
}

func NewExportHandler(q queries.ExportQueries, clk clock.Clock) *ExportHandler {
	return &ExportHandler{q: q, clock: clk}
}

// @Summary Export events
// @Description CSV with the same filters as the listing
// @Tags exports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Router /api/exports/events.csv [get]
func (h *ExportHandler) Events(c *gin.Context) {
	var q reqdto.EventListQuery
	if !bindQuery(c, &q) {
		return
	}
	h.table(c, "events", func(ctx context.Context, w io.Writer) error {
		return h.q.Events(ctx, q.Filters(), w)
	})
}

// @Summary Export assignments
// @Tags exports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Router /api/exports/assignments.csv [get]
func (h *ExportHandler) Assignments(c *gin.Context) {
	var q reqdto.AssignmentListQuery
	if !bindQuery(c, &q) {
		return
	}
	h.table(c, "assignments", func(ctx context.Context, w io.Writer) error {
		return h.q.Assignments(ctx, q.Filters(), w)
	})
}

// @Summary Export desktop
// @Tags exports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Router /api/exports/desktop.csv [get]
func (h *ExportHandler) Desktop(c *gin.Context) {
	var q reqdto.AssignmentListQuery
	if !bindQuery(c, &q) {
		return
	}
	h.table(c, "desktop", func(ctx context.Context, w io.Writer) error {
		return h.q.Desktop(ctx, q.Filters(), w)
	})
}

// @Summary Export reservations
// @Tags exports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Router /api/exports/reservations.csv [get]
func (h *ExportHandler) Reservations(c *gin.Context) {
	var q reqdto.ReservationListQuery
	if !bindQuery(c, &q) {
		return
	}
	h.table(c, "reservations", func(ctx context.Context, w io.Writer) error {
		return h.q.Reservations(ctx, q.Filters(), w)
	})
}

// @Summary Export clubs
// @Tags exports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Router /api/exports/clubs.csv [get]
func (h *ExportHandler) Clubs(c *gin.Context) {
	var q reqdto.ClubListQuery
	if !bindQuery(c, &q) {
		return
	}
	h.table(c, "clubs", func(ctx context.Context, w io.Writer) error {
		return h.q.Clubs(ctx, q.Filters(), w)
	})
}

// @Summary Export weekly schedule
// @Tags exports
// @Produce text/csv
// @Security BearerAuth
// @Param week query string false "Any day of the week (YYYY-MM-DD)"
// @Success 200 {file} file
// @Router /api/exports/schedule.csv [get]
func (h *ExportHandler) WeeklySchedule(c *gin.Context) {
	var q reqdto.WeekQuery
	if !bindQuery(c, &q) {
		return
	}
	h.table(c, "schedule", func(ctx context.Context, w io.Writer) error {
		return h.q.WeeklySchedule(ctx, weekOf(q, h.clock), w)
	})
}

// @Summary Reservations calendar
// @Description iCalendar feed of reservations intersecting [from, to)
// @Tags exports
// @Produce text/calendar
// @Security BearerAuth
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339)"
// @Success 200 {file} file
// @Router /api/exports/reservations.ics [get]
func (h *ExportHandler) ReservationsCalendar(c *gin.Context) {
	var q reqdto.CalendarQuery
	if !bindQuery(c, &q) {
		return
	}
	h.calendar(c, "reservations", func(ctx context.Context, w io.Writer) error {
		return h.q.ReservationsCalendar(ctx, q.From, q.To, w)
	})
}

// @Summary Weekly schedule calendar
// @Tags exports
// @Produce text/calendar
// @Security BearerAuth
// @Param week query string false "Any day of the week (YYYY-MM-DD)"
// @Success 200 {file} file
// @Router /api/exports/schedule.ics [get]
func (h *ExportHandler) WeeklyCalendar(c *gin.Context) {
	var q reqdto.WeekQuery
	if !bindQuery(c, &q) {
		return
	}
	h.calendar(c, "schedule", func(ctx context.Context, w io.Writer) error {
		return h.q.WeeklyCalendar(ctx, weekOf(q, h.clock), w)
	})
}

func (h *ExportHandler) table(c *gin.Context, name string, render func(context.Context, io.Writer) error) {
	h.download(c, name+".csv", h.q.TableContentType(), render)
}

func (h *ExportHandler) calendar(c *gin.Context, name string, render func(context.Context, io.Writer) error) {
	h.download(c, name+".ics", h.q.CalendarContentType(), render)
}

// download renders fully before writing so a failure still gets a JSON error.
func (h *ExportHandler) download(c *gin.Context, filename, contentType string, render func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := render(c.Request.Context(), &buf); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Export failed")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

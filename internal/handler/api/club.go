package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "venue-desk/internal/handler/dto/request"
	resdto "venue-desk/internal/handler/dto/response"
	"venue-desk/internal/handler/httperr"
	"venue-desk/internal/pkg/clock"
	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/queries"
)

type ClubHandler struct {
	cmds  commands.ClubCommands
	q     queries.ClubQueries
	clock clock.Clock
}

func NewClubHandler(cmds commands.ClubCommands, q queries.ClubQueries, clk clock.Clock) *ClubHandler {
	return &ClubHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Create club
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateClubRequest true "Club"
// @Success 201 {object} resdto.ClubResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/clubs [post]
func (h *ClubHandler) Create(c *gin.Context) {
	var req reqdto.CreateClubRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Create club failed")
		return
	}
	h.render(c, http.StatusCreated, id)
}

// @Summary Get club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} resdto.ClubResponse
// @Failure 404 {object} httperr.Response
// @Router /api/clubs/{id} [get]
func (h *ClubHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Update club
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param request body reqdto.UpdateClubRequest true "Changes"
// @Success 200 {object} resdto.ClubResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/clubs/{id} [patch]
func (h *ClubHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateClubRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Update club failed")
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary List clubs
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param type query string false "Club type name"
// @Param teacher query string false "Teacher name"
// @Param place query string false "Place name"
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.ClubResponse]
// @Router /api/clubs [get]
func (h *ClubHandler) List(c *gin.Context) {
	var q reqdto.ClubListQuery
	if !bindQuery(c, &q) {
		return
	}
	rows, next, err := h.q.List(c.Request.Context(), q.Filters(), q.Cursor(), q.PageLimit())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List clubs failed")
		return
	}
	items, err := resdto.FromClubViews(rows)
	respond(c, http.StatusOK, resdto.NewPage(items, next), err)
}

// @Summary Delete club
// @Tags clubs
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param confirm query bool false "Confirm the removal"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 428 {object} httperr.Response
// @Router /api/clubs/{id} [delete]
func (h *ClubHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, confirmation(c)); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Delete club failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Weekly schedule
// @Description Monday-first grid of club sessions for the week containing ?week
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param week query string false "Any day of the week (YYYY-MM-DD); defaults to today"
// @Success 200 {object} resdto.WeekResponse
// @Router /api/clubs/schedule [get]
func (h *ClubHandler) Weekly(c *gin.Context) {
	var q reqdto.WeekQuery
	if !bindQuery(c, &q) {
		return
	}
	week, err := h.q.WeeklySchedule(c.Request.Context(), weekOf(q, h.clock))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Weekly schedule failed")
		return
	}
	body, err := resdto.FromWeekView(week)
	respond(c, http.StatusOK, body, err)
}

func (h *ClubHandler) render(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Not found")
		return
	}
	body, err := resdto.FromClubView(view)
	respond(c, status, body, err)
}

// weekOf reads the date as a calendar day in the venue time zone.
func weekOf(q reqdto.WeekQuery, clk clock.Clock) time.Time {
	now := clk.Now()
	if q.Week == nil {
		return now
	}
	d := *q.Week
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
}

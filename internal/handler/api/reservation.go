package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "venue-desk/internal/handler/dto/request"
	resdto "venue-desk/internal/handler/dto/response"
	"venue-desk/internal/handler/httperr"
	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/queries"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Create an event together with its reservation of a place or some of its areas
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Create reservation failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateReservationResult(result))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Not found")
		return
	}
	body, err := resdto.FromReservationView(view)
	respond(c, http.StatusOK, body, err)
}

// @Summary List reservations
// @Description Newest first, with keyset pagination
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param place query string false "Place name"
// @Param start_from query string false "Start strictly after"
// @Param start_to query string false "Start strictly before"
// @Param end_from query string false "End strictly after"
// @Param end_to query string false "End strictly before"
// @Param created_from query string false "Created strictly after"
// @Param created_to query string false "Created strictly before"
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.ReservationResponse]
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	var q reqdto.ReservationListQuery
	if !bindQuery(c, &q) {
		return
	}
	rows, next, err := h.q.List(c.Request.Context(), q.Filters(), q.Cursor(), q.PageLimit())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List reservations failed")
		return
	}
	items, err := resdto.FromReservationViews(rows)
	respond(c, http.StatusOK, resdto.NewPage(items, next), err)
}

// @Summary Delete reservation
// @Description Removes the reservation; its event stays. Requires confirm=true or X-Confirm: true.
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param confirm query bool false "Confirm the removal"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 428 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, confirmation(c)); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Delete reservation failed")
		return
	}
	c.Status(http.StatusNoContent)
}

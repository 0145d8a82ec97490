package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "venue-desk/internal/handler/dto/request"
	resdto "venue-desk/internal/handler/dto/response"
	"venue-desk/internal/handler/httperr"
	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/queries"
)

type EventHandler struct {
	cmds commands.EventCommands
	q    queries.EventQueries
}

func NewEventHandler(cmds commands.EventCommands, q queries.EventQueries) *EventHandler {
	return &EventHandler{cmds: cmds, q: q}
}

// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Event"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Create event failed")
		return
	}
	h.render(c, http.StatusCreated, id)
}

// @Summary Get event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Update event
// @Description Partial update; omitted fields keep their value
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.UpdateEventRequest true "Changes"
// @Success 200 {object} resdto.EventResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/events/{id} [patch]
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateEventRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Update event failed")
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary List events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param type query string false "Event type name"
// @Param scope query string false "entertainment, enlightenment or education"
// @Param start_from query string false "Start strictly after"
// @Param start_to query string false "Start strictly before"
// @Param created_from query string false "Created strictly after"
// @Param created_to query string false "Created strictly before"
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.EventResponse]
// @Router /api/events [get]
func (h *EventHandler) List(c *gin.Context) {
	var q reqdto.EventListQuery
	if !bindQuery(c, &q) {
		return
	}
	rows, next, err := h.q.List(c.Request.Context(), q.Filters(), q.Cursor(), q.PageLimit())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List events failed")
		return
	}
	items, err := resdto.FromEventViews(rows)
	respond(c, http.StatusOK, resdto.NewPage(items, next), err)
}

// @Summary Delete events
// @Description Deletes the selected events and their reservations. Requires confirmation.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SelectionRequest true "Selected events"
// @Param confirm query bool false "Confirm the removal"
// @Success 200 {object} resdto.DeletedResponse
// @Failure 428 {object} httperr.Response
// @Router /api/events/delete [post]
func (h *EventHandler) DeleteMany(c *gin.Context) {
	var req reqdto.SelectionRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.cmds.DeleteMany(c.Request.Context(), req.IDs, confirmation(c))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Delete events failed")
		return
	}
	c.JSON(http.StatusOK, resdto.DeletedResponse{Deleted: n})
}

func (h *EventHandler) render(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Not found")
		return
	}
	body, err := resdto.FromEventView(view)
	respond(c, status, body, err)
}

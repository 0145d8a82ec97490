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

type AssignmentHandler struct {
	cmds commands.AssignmentCommands
	q    queries.AssignmentQueries
}

func NewAssignmentHandler(cmds commands.AssignmentCommands, q queries.AssignmentQueries) *AssignmentHandler {
	return &AssignmentHandler{cmds: cmds, q: q}
}

// @Summary Create assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAssignmentRequest true "Assignment"
// @Success 201 {object} resdto.AssignmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Create assignment failed")
		return
	}
	h.render(c, http.StatusCreated, id)
}

// @Summary Get assignment
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} resdto.AssignmentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/assignments/{id} [get]
func (h *AssignmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Update assignment
// @Description Partial update; completed assignments are read-only
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Param request body reqdto.UpdateAssignmentRequest true "Changes"
// @Success 200 {object} resdto.AssignmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/assignments/{id} [patch]
func (h *AssignmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Update assignment failed")
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary List assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param type query string false "Assignment type name"
// @Param place query string false "Place name"
// @Param state query string false "draft, active or completed"
// @Param deadline_from query string false "Deadline strictly after"
// @Param deadline_to query string false "Deadline strictly before"
// @Param created_from query string false "Created strictly after"
// @Param created_to query string false "Created strictly before"
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.AssignmentResponse]
// @Router /api/assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	var q reqdto.AssignmentListQuery
	if !bindQuery(c, &q) {
		return
	}
	rows, next, err := h.q.List(c.Request.Context(), q.Filters(), q.Cursor(), q.PageLimit())
	h.page(c, rows, next, err)
}

// @Summary Desktop
// @Description Active assignments awaiting completion
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Page[resdto.AssignmentResponse]
// @Router /api/assignments/desktop [get]
func (h *AssignmentHandler) Desktop(c *gin.Context) {
	var q reqdto.AssignmentListQuery
	if !bindQuery(c, &q) {
		return
	}
	rows, next, err := h.q.Desktop(c.Request.Context(), q.Filters(), q.Cursor(), q.PageLimit())
	h.page(c, rows, next, err)
}

// @Summary Complete assignments
// @Description Moves every selected active assignment to completed, or none. Requires confirmation.
// @Tags assignments
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.SelectionRequest true "Selected assignments"
// @Param confirm query bool false "Confirm the completion"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 428 {object} httperr.Response
// @Router /api/assignments/complete [post]
func (h *AssignmentHandler) Complete(c *gin.Context) {
	var req reqdto.SelectionRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Complete(c.Request.Context(), req.IDs, confirmation(c)); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Complete assignments failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete assignments
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SelectionRequest true "Selected assignments"
// @Param confirm query bool false "Confirm the removal"
// @Success 200 {object} resdto.DeletedResponse
// @Failure 428 {object} httperr.Response
// @Router /api/assignments/delete [post]
func (h *AssignmentHandler) DeleteMany(c *gin.Context) {
	var req reqdto.SelectionRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.cmds.DeleteMany(c.Request.Context(), req.IDs, confirmation(c))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Delete assignments failed")
		return
	}
	c.JSON(http.StatusOK, resdto.DeletedResponse{Deleted: n})
}

func (h *AssignmentHandler) render(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Not found")
		return
	}
	body, err := resdto.FromAssignmentView(view)
	respond(c, status, body, err)
}

func (h *AssignmentHandler) page(c *gin.Context, rows []*queries.AssignmentView, next *queries.Cursor, err error) {
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List assignments failed")
		return
	}
	items, err := resdto.FromAssignmentViews(rows)
	respond(c, http.StatusOK, resdto.NewPage(items, next), err)
}

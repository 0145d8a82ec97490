package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domcatalog "venue-desk/internal/domain/catalog"
	reqdto "venue-desk/internal/handler/dto/request"
	resdto "venue-desk/internal/handler/dto/response"
	"venue-desk/internal/handler/httperr"
	"venue-desk/internal/usecase/catalog"
)

// CatalogHandler serves every named catalog. Areas are reached through
// their place: /places/{place_id}/areas.
type CatalogHandler struct {
	cmds catalog.Commands
}

func NewCatalogHandler(cmds catalog.Commands) *CatalogHandler {
	return &CatalogHandler{cmds: cmds}
}

// @Summary List catalog
// @Tags catalogs
// @Produce json
// @Security BearerAuth
// @Param kind path string true "event-types, assignment-types, club-types, teachers or places"
// @Success 200 {array} resdto.CatalogItemResponse
// @Failure 400 {object} httperr.Response
// @Router /api/catalogs/{kind} [get]
func (h *CatalogHandler) List(c *gin.Context) {
	kind, owner, ok := h.target(c)
	if !ok {
		return
	}
	items, err := h.cmds.List(c.Request.Context(), kind, owner)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List catalog failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalogItems(items))
}

// @Summary Add catalog item
// @Description An empty name adds "Object (N)"
// @Tags catalogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Catalog kind"
// @Param request body reqdto.AddCatalogItemRequest false "Name"
// @Success 201 {object} resdto.CatalogItemResponse
// @Failure 409 {object} httperr.Response
// @Router /api/catalogs/{kind} [post]
func (h *CatalogHandler) Add(c *gin.Context) {
	kind, owner, ok := h.target(c)
	if !ok {
		return
	}
	var req reqdto.AddCatalogItemRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	item, err := h.cmds.Add(c.Request.Context(), kind, owner, req.Name)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Add catalog item failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCatalogItem(item))
}

// @Summary Rename catalog item
// @Tags catalogs
// @Accept json
// @Security BearerAuth
// @Param kind path string true "Catalog kind"
// @Param id path string true "Item ID"
// @Param request body reqdto.RenameCatalogItemRequest true "New name"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/catalogs/{kind}/{id} [put]
func (h *CatalogHandler) Rename(c *gin.Context) {
	kind, owner, ok := h.target(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RenameCatalogItemRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Rename(c.Request.Context(), kind, owner, id, req.Name); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Rename catalog item failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove catalog item
// @Tags catalogs
// @Security BearerAuth
// @Param kind path string true "Catalog kind"
// @Param id path string true "Item ID"
// @Param confirm query bool false "Confirm the removal"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 428 {object} httperr.Response
// @Router /api/catalogs/{kind}/{id} [delete]
func (h *CatalogHandler) Remove(c *gin.Context) {
	kind, owner, ok := h.target(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), kind, owner, id, confirmation(c)); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Remove catalog item failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// target resolves the catalog from either /catalogs/:kind or /places/:place_id/areas.
func (h *CatalogHandler) target(c *gin.Context) (domcatalog.Kind, *uuid.UUID, bool) {
	if c.Param("place_id") != "" {
		placeID, ok := pathID(c, "place_id")
		if !ok {
			return "", nil, false
		}
		return domcatalog.KindAreas, &placeID, true
	}
	kind, err := domcatalog.ParseKind(c.Param("kind"))
	if err != nil || kind.Scoped() {
		if err == nil {
			err = domcatalog.ErrUnknownKind
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown catalog", nil)
		return "", nil, false
	}
	return kind, nil, true
}

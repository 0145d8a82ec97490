package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "venue-desk/internal/handler/dto/request"
	resdto "venue-desk/internal/handler/dto/response"
	"venue-desk/internal/handler/httperr"
	"venue-desk/internal/usecase/queries"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Available places
// @Description Places with at least one free unit in [start, end)
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param start query string true "Interval start (RFC 3339)"
// @Param end query string true "Interval end (RFC 3339)"
// @Success 200 {array} resdto.AvailablePlaceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability/places [get]
func (h *AvailabilityHandler) Places(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if !bindQuery(c, &q) {
		return
	}
	places, err := h.q.FindPlaces(c.Request.Context(), q.Start, q.End)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Availability search failed")
		return
	}
	body, err := resdto.FromAvailablePlaces(places)
	respond(c, http.StatusOK, body, err)
}

// @Summary Areas of a place
// @Description Every area of the place; busy ones have enabled=false
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Place ID"
// @Param start query string true "Interval start (RFC 3339)"
// @Param end query string true "Interval end (RFC 3339)"
// @Success 200 {array} resdto.AreaOptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/availability/places/{id}/areas [get]
func (h *AvailabilityHandler) Areas(c *gin.Context) {
	placeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if !bindQuery(c, &q) {
		return
	}
	areas, err := h.q.FindAreas(c.Request.Context(), placeID, q.Start, q.End)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Availability search failed")
		return
	}
	body, err := resdto.FromAreaOptions(areas)
	respond(c, http.StatusOK, body, err)
}

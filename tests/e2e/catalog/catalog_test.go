//go:build e2e

package catalog_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"venue-desk/internal/domain/catalog"
	reqdto "venue-desk/internal/handler/dto/request"
	resdto "venue-desk/internal/handler/dto/response"
	"venue-desk/tests/common/authtest"
	"venue-desk/tests/common/dbtest"
	"venue-desk/tests/common/httptest"
	"venue-desk/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const placesURL = "/api/catalogs/places"

type catalogSuite struct {
	e2e.SharedSuite
	token string
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

func (s *catalogSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.token = authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), s.Config.Operator.Login)
}

func (s *catalogSuite) list(url string) []resdto.CatalogItemResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.token)
	var items []resdto.CatalogItemResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
	return items
}

func (s *catalogSuite) add(url, name string) resdto.CatalogItemResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, reqdto.AddCatalogItemRequest{Name: name}, s.token)
	var item resdto.CatalogItemResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &item)
	return item
}

func (s *catalogSuite) TestAdd() {
	s.Run("empty name gets a numbered placeholder", func() {
		s.add(placesURL, "Gym")
		item := s.add(placesURL, "")

		s.Equal("Object (1)", item.Name)
		s.Len(s.list(placesURL), 2)
	})

	s.Run("duplicate name is rejected", func() {
		s.add("/api/catalogs/teachers", "Ivanova")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/catalogs/teachers",
			reqdto.AddCatalogItemRequest{Name: "Ivanova"}, s.token)

		httptest.AssertErrorReason(s.T(), w, http.StatusConflict, catalog.ErrDuplicateName)
		s.Len(s.list("/api/catalogs/teachers"), 1)
	})

	s.Run("unknown kind", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/catalogs/areas", nil, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Unknown catalog")
	})
}

func (s *catalogSuite) TestRename() {
	s.Run("taking a sibling's name leaves the store untouched", func() {
		gym := s.add(placesURL, "Gym")
		s.add(placesURL, "Library")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, placesURL+"/"+gym.ID.String(),
			reqdto.RenameCatalogItemRequest{Name: "Library"}, s.token)

		httptest.AssertErrorReason(s.T(), w, http.StatusConflict, catalog.ErrDuplicateName)
		var name string
		s.Require().NoError(s.DB.QueryRow(context.Background(), "SELECT name FROM places WHERE id = $1", gym.ID).Scan(&name))
		s.Equal("Gym", name)
	})

	s.Run("area names are unique per place only", func() {
		hallID := dbtest.CreateTestPlace(s.T(), s.DB, "Hall A")
		gymID := dbtest.CreateTestPlace(s.T(), s.DB, "Hall B")
		s.add(fmt.Sprintf("/api/places/%s/areas", hallID), "Left")
		s.add(fmt.Sprintf("/api/places/%s/areas", gymID), "Left")

		s.Len(s.list(fmt.Sprintf("/api/places/%s/areas", hallID)), 1)
	})
}

func (s *catalogSuite) TestRemove() {
	s.Run("declined removal changes nothing", func() {
		gym := s.add(placesURL, "Gym")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, placesURL+"/"+gym.ID.String(), nil, s.token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusPreconditionRequired, "")
		s.Len(s.list(placesURL), 1)
	})

	s.Run("removing a place cascades to its areas", func() {
		hallID := dbtest.CreateTestPlace(s.T(), s.DB, "Hall A")
		dbtest.CreateTestArea(s.T(), s.DB, hallID, "Left")
		dbtest.CreateTestArea(s.T(), s.DB, hallID, "Right")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			placesURL+"/"+hallID.String()+"?confirm=true", nil, s.token)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())

		var orphans int
		s.Require().NoError(s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM areas WHERE place_id = $1", hallID).Scan(&orphans))
		s.Zero(orphans)
	})
}

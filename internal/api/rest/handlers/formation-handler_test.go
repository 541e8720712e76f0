package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/projetprice/formation-svc/internal/domain"
	"github.com/projetprice/formation-svc/internal/dto"
	"github.com/stretchr/testify/require"
)

type fakeFormationService struct {
	lastParams    dto.AdvancedSearchParams
	lastSortBy    string
	lastDirection string
	lastPage      int
	lastSize      int
	lastField     string
	lastQuery     string

	page        *dto.FormationPage
	formation   *domain.Formation
	suggestions []string
}

func (s *fakeFormationService) FindAllPaged(_ context.Context, page, size int) (*dto.FormationPage, error) {
	s.lastPage, s.lastSize = page, size
	return s.page, nil
}

func (s *fakeFormationService) FindByID(_ context.Context, _ string) (*domain.Formation, error) {
	return s.formation, nil
}

func (s *fakeFormationService) SearchByRegion(_ context.Context, value string, page, size int) (*dto.FormationPage, error) {
	s.lastQuery, s.lastPage, s.lastSize = value, page, size
	return s.page, nil
}

func (s *fakeFormationService) SearchByEstablishmentStatus(_ context.Context, value string, page, size int) (*dto.FormationPage, error) {
	s.lastQuery, s.lastPage, s.lastSize = value, page, size
	return s.page, nil
}

func (s *fakeFormationService) SearchByProgram(_ context.Context, value string, page, size int) (*dto.FormationPage, error) {
	s.lastQuery, s.lastPage, s.lastSize = value, page, size
	return s.page, nil
}

func (s *fakeFormationService) AdvancedSearch(_ context.Context, params dto.AdvancedSearchParams) (*dto.FormationPage, error) {
	s.lastParams = params
	return s.page, nil
}

func (s *fakeFormationService) RankFormations(_ context.Context, sortBy, direction string, page, size int) (*dto.FormationPage, error) {
	s.lastSortBy, s.lastDirection, s.lastPage, s.lastSize = sortBy, direction, page, size
	return s.page, nil
}

func (s *fakeFormationService) SearchFormations(_ context.Context, query string) ([]domain.Formation, error) {
	s.lastQuery = query
	return nil, nil
}

func (s *fakeFormationService) GetFieldSuggestions(_ context.Context, field, query string) ([]string, error) {
	s.lastField, s.lastQuery = field, query
	return s.suggestions, nil
}

func (s *fakeFormationService) SaveFormation(_ context.Context, formation *domain.Formation) (*domain.Formation, error) {
	return formation, nil
}

func (s *fakeFormationService) SaveAll(_ context.Context, _ []domain.Formation) error {
	return nil
}

func (s *fakeFormationService) ComputeAcceptanceRate(_ *domain.Formation) *float64 {
	return nil
}

type envelope struct {
	Message string          `json:"message"`
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
}

func formationApp(svc *fakeFormationService) *fiber.App {
	app := fiber.New()
	NewFormationHandler(svc).SetupRoutes(app)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)

	var body envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestGetAllPaged_Envelope(t *testing.T) {
	svc := &fakeFormationService{page: &dto.FormationPage{Content: []domain.Formation{}, Size: 10}}
	app := formationApp(svc)

	resp, body := get(t, app, "/api/formations/all?page=2&size=20")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "SUCCESS", body.Status)
	require.Equal(t, 2, svc.lastPage)
	require.Equal(t, 20, svc.lastSize)
}

func TestGetAllPaged_Defaults(t *testing.T) {
	svc := &fakeFormationService{page: &dto.FormationPage{}}
	app := formationApp(svc)

	_, _ = get(t, app, "/api/formations/all")
	require.Equal(t, 0, svc.lastPage)
	require.Equal(t, 10, svc.lastSize)
}

func TestAdvancedSearch_QueryParsing(t *testing.T) {
	svc := &fakeFormationService{page: &dto.FormationPage{}}
	app := formationApp(svc)

	resp, _ := get(t, app, "/api/formations/advancedSearch?region=Bretagne&bacType=techno&hasDetailedInfo=true&sortBy=candidateCount&direction=DESC&page=1&size=25")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	params := svc.lastParams
	require.Equal(t, "Bretagne", params.Region)
	require.Equal(t, "techno", params.BacType)
	require.NotNil(t, params.HasDetailedInfo)
	require.True(t, *params.HasDetailedInfo)
	require.Equal(t, "candidateCount", params.SortBy)
	require.Equal(t, "DESC", params.Direction)
	require.Equal(t, 1, params.Page)
	require.Equal(t, 25, params.Size)
}

func TestAdvancedSearch_OmittedFiltersStayUnset(t *testing.T) {
	svc := &fakeFormationService{page: &dto.FormationPage{}}
	app := formationApp(svc)

	_, _ = get(t, app, "/api/formations/advancedSearch")

	params := svc.lastParams
	require.Empty(t, params.Region)
	require.Nil(t, params.HasDetailedInfo)
	require.Equal(t, 10, params.Size)
	require.Equal(t, "ASC", params.Direction)
}

func TestRank_Defaults(t *testing.T) {
	svc := &fakeFormationService{page: &dto.FormationPage{}}
	app := formationApp(svc)

	_, _ = get(t, app, "/api/formations/rank")
	require.Equal(t, "candidateCount", svc.lastSortBy)
	require.Equal(t, "DESC", svc.lastDirection)
}

func TestSearchByRegion_RequiresValue(t *testing.T) {
	svc := &fakeFormationService{page: &dto.FormationPage{}}
	app := formationApp(svc)

	resp, body := get(t, app, "/api/formations/search/region")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "FAILURE", body.Status)

	resp, _ = get(t, app, "/api/formations/search/region?value=Bretagne&page=1&size=5")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "Bretagne", svc.lastQuery)
	require.Equal(t, 1, svc.lastPage)
	require.Equal(t, 5, svc.lastSize)
}

func TestSuggestions(t *testing.T) {
	svc := &fakeFormationService{suggestions: []string{"Île-de-France"}}
	app := formationApp(svc)

	resp, body := get(t, app, "/api/formations/suggestions?field=region&query=ile")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "region", svc.lastField)
	require.Equal(t, "ile", svc.lastQuery)

	var values []string
	require.NoError(t, json.Unmarshal(body.Data, &values))
	require.Equal(t, []string{"Île-de-France"}, values)

	resp, _ = get(t, app, "/api/formations/suggestions")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetFormationByID_NotFound(t *testing.T) {
	svc := &fakeFormationService{}
	app := formationApp(svc)

	resp, body := get(t, app, "/api/formations/unknown-id")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, "FAILURE", body.Status)
}

func TestKnownRoutesNotShadowedByWildcard(t *testing.T) {
	svc := &fakeFormationService{page: &dto.FormationPage{}, suggestions: []string{}}
	app := formationApp(svc)

	// /all must hit the listing handler, not /:id
	resp, body := get(t, app, "/api/formations/all")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "Formations retrieved successfully", body.Message)
}

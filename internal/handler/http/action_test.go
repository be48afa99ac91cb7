package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paroquia-on/server/internal/service"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/models"
)

type mockActionService struct {
	listFn             func(ctx context.Context, filter store.ActionFilter) ([]models.Action, error)
	getFn              func(ctx context.Context, id int64) (models.Action, error)
	createFn           func(ctx context.Context, action models.Action) (models.Action, error)
	updateFn           func(ctx context.Context, id int64, update models.ActionUpdate) (models.Action, error)
	deleteFn           func(ctx context.Context, id int64) error
	suggestObjectiveFn func(ctx context.Context, theme string) (string, error)
}

func (m *mockActionService) List(ctx context.Context, filter store.ActionFilter) ([]models.Action, error) {
	return m.listFn(ctx, filter)
}

func (m *mockActionService) Get(ctx context.Context, id int64) (models.Action, error) {
	return m.getFn(ctx, id)
}

func (m *mockActionService) Create(ctx context.Context, action models.Action) (models.Action, error) {
	return m.createFn(ctx, action)
}

func (m *mockActionService) Update(ctx context.Context, id int64, update models.ActionUpdate) (models.Action, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockActionService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockActionService) SuggestObjective(ctx context.Context, theme string) (string, error) {
	return m.suggestObjectiveFn(ctx, theme)
}

func newActionRouter(actions *mockActionService) http.Handler {
	return newTestRouter(&service.Services{
		AuthService:   acceptAnyToken(1),
		ActionService: actions,
	})
}

func TestListActions_FilterPassthrough(t *testing.T) {
	var gotFilter store.ActionFilter
	router := newActionRouter(&mockActionService{
		listFn: func(ctx context.Context, filter store.ActionFilter) ([]models.Action, error) {
			gotFilter = filter
			return []models.Action{{ID: 1, Title: "Campanha do agasalho", Status: models.ActionStatusPlanned}}, nil
		},
	})

	rec := performRequest(router, http.MethodGet, "/api/acoes?pastoral_id=5&status=planejada", "", "token")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotFilter.PastoralID)
	assert.Equal(t, int64(5), *gotFilter.PastoralID)
	assert.Equal(t, models.ActionStatusPlanned, gotFilter.Status)
}

func TestListActions_InvalidStatus(t *testing.T) {
	router := newActionRouter(&mockActionService{
		listFn: func(ctx context.Context, filter store.ActionFilter) ([]models.Action, error) {
			return nil, service.ErrInvalidStatus
		},
	})

	rec := performRequest(router, http.MethodGet, "/api/acoes?status=invalida", "", "token")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, codeInvalidStatus, decodeErrorEnvelope(t, rec).Code)
}

func TestSuggestObjective(t *testing.T) {
	router := newActionRouter(&mockActionService{
		suggestObjectiveFn: func(ctx context.Context, theme string) (string, error) {
			assert.Equal(t, "juventude", theme)
			return "Aproximar os jovens da comunidade.", nil
		},
	})

	rec := performRequest(router, http.MethodPost, "/api/acoes/sugerir-objetivo",
		`{"tema":"juventude"}`, "token")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SuggestObjectiveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Aproximar os jovens da comunidade.", resp.Objective)
}

func TestSuggestObjective_Unavailable(t *testing.T) {
	router := newActionRouter(&mockActionService{
		suggestObjectiveFn: func(ctx context.Context, theme string) (string, error) {
			return "", service.ErrSuggestionUnavailable
		},
	})

	rec := performRequest(router, http.MethodPost, "/api/acoes/sugerir-objetivo",
		`{"tema":"juventude"}`, "token")

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, codeSuggestionUnavailable, decodeErrorEnvelope(t, rec).Code)
}

func TestSuggestObjective_MissingTheme(t *testing.T) {
	router := newActionRouter(&mockActionService{
		suggestObjectiveFn: func(ctx context.Context, theme string) (string, error) {
			return "", service.ErrMissingFields
		},
	})

	rec := performRequest(router, http.MethodPost, "/api/acoes/sugerir-objetivo", `{}`, "token")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, codeMissingFields, decodeErrorEnvelope(t, rec).Code)
}

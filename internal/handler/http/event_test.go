package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paroquia-on/server/internal/service"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/models"
)

type mockEventService struct {
	listFn   func(ctx context.Context, filter store.EventFilter) ([]models.Event, error)
	getFn    func(ctx context.Context, id int64) (models.Event, error)
	createFn func(ctx context.Context, event models.Event) (models.Event, error)
	updateFn func(ctx context.Context, id int64, update models.EventUpdate) (models.Event, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockEventService) List(ctx context.Context, filter store.EventFilter) ([]models.Event, error) {
	return m.listFn(ctx, filter)
}

func (m *mockEventService) Get(ctx context.Context, id int64) (models.Event, error) {
	return m.getFn(ctx, id)
}

func (m *mockEventService) Create(ctx context.Context, event models.Event) (models.Event, error) {
	return m.createFn(ctx, event)
}

func (m *mockEventService) Update(ctx context.Context, id int64, update models.EventUpdate) (models.Event, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockEventService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func TestListEvents_DateRangeFilter(t *testing.T) {
	var gotFilter store.EventFilter
	router := newTestRouter(&service.Services{
		AuthService: acceptAnyToken(1),
		EventService: &mockEventService{
			listFn: func(ctx context.Context, filter store.EventFilter) ([]models.Event, error) {
				gotFilter = filter
				return []models.Event{}, nil
			},
		},
	})

	rec := performRequest(router, http.MethodGet,
		"/api/eventos?comunidade_id=2&de=2026-09-01&ate=2026-09-30", "", "token")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotFilter.CommunityID)
	assert.Equal(t, int64(2), *gotFilter.CommunityID)
	require.NotNil(t, gotFilter.From)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *gotFilter.From)
	require.NotNil(t, gotFilter.To)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), *gotFilter.To)
}

func TestQueryDate(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  *time.Time
	}{
		{"absent", "", nil},
		{"plain date", "de=2026-09-01", timeRef(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))},
		{"rfc3339", "de=2026-09-01T10:30:00Z", timeRef(time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC))},
		{"garbage", "de=yesterday", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodGet, "/api/eventos?"+tt.query, nil)
			require.NoError(t, err)

			got := queryDate(r, "de")
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(*tt.want))
		})
	}
}

func timeRef(t time.Time) *time.Time { return &t }

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/paroquia-on/server/internal/config"
	"github.com/paroquia-on/server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSuggestAdapter(t *testing.T, serverURL string) ObjectiveSuggester {
	t.Helper()
	a, err := NewHTTPSuggestAdapter(config.Suggest{
		BaseURL: serverURL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewHTTPSuggestAdapter_NotConfigured(t *testing.T) {
	_, err := NewHTTPSuggestAdapter(config.Suggest{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSuggestObjective_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/generate", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"  Promover encontros mensais de formação.  "}`))
	}))
	defer srv.Close()

	a := newSuggestAdapter(t, srv.URL)

	objective, err := a.SuggestObjective(context.Background(), "formação de jovens")
	require.NoError(t, err)
	assert.Equal(t, "Promover encontros mensais de formação.", objective)
}

func TestSuggestObjective_SendsThemeInPrompt(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		gotBody = string(buf)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"ok"}`))
	}))
	defer srv.Close()

	a := newSuggestAdapter(t, srv.URL)

	_, err := a.SuggestObjective(context.Background(), "catequese")
	require.NoError(t, err)
	assert.True(t, strings.Contains(gotBody, "catequese"), "theme missing from prompt: %s", gotBody)
}

func TestSuggestObjective_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newSuggestAdapter(t, srv.URL)

	_, err := a.SuggestObjective(context.Background(), "catequese")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSuggestObjective_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newSuggestAdapter(t, srv.URL)

	_, err := a.SuggestObjective(context.Background(), "catequese")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestSuggestObjective_EmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"   "}`))
	}))
	defer srv.Close()

	a := newSuggestAdapter(t, srv.URL)

	_, err := a.SuggestObjective(context.Background(), "catequese")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestSuggestObjective_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a := newSuggestAdapter(t, srv.URL)

	_, err := a.SuggestObjective(context.Background(), "catequese")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "scheme kept", in: "https://ia.example.com/", want: "https://ia.example.com"},
		{name: "scheme added", in: "ia.example.com:8443", want: "http://ia.example.com:8443"},
		{name: "missing host", in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paroquia-on/server/internal/service"
)

// Unsupported methods on known routes answer 404 instead of 405 so the
// route surface is not enumerable.
func TestRouter_UnsupportedMethodHidesRoute(t *testing.T) {
	router := newTestRouter(&service.Services{AuthService: &mockAuthService{}})

	rec := performRequest(router, http.MethodGet, "/api/auth/login", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_UnknownPath(t *testing.T) {
	router := newTestRouter(&service.Services{AuthService: &mockAuthService{}})

	rec := performRequest(router, http.MethodGet, "/api/desconhecido", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

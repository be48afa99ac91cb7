package handler

import (
	"github.com/paroquia-on/server/internal/handler/http"
	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}

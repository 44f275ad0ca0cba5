package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// sourceIP returns the client address without the port. RemoteAddr is
// already rewritten by chi's RealIP middleware when the request came
// through a proxy.
func sourceIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

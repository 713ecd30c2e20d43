package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-http-consumer/internal/listener"
	"github.com/MKhiriev/go-http-consumer/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
	service.ErrNoListener:            http.StatusInternalServerError,

	listener.ErrInvalidState:    http.StatusConflict,
	listener.ErrShutdownTimeout: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-http-consumer/internal/app"
	"github.com/MKhiriev/go-http-consumer/internal/listener"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/internal/utils"
	"github.com/MKhiriev/go-http-consumer/models"
)

func (h *Handler) getListenerStatus(w http.ResponseWriter, r *http.Request) {
	status := h.services.ListenerService.Status(r.Context())

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getListenerStatus").Msg("error writing response")
	}
}

func (h *Handler) suspendListener(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resp, err := h.services.ListenerService.Suspend(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.suspendListener").Msg("error suspending listener")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.suspendListener").Msg("error writing response")
	}
}

func (h *Handler) resumeListener(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.resumeListener").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.ListenerService.Resume(r.Context(), req); err != nil {
		log.Err(err).Str("func", "*Handler.resumeListener").Msg("error resuming listener")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// stopListener accepts an empty body as "use the configured timeout". A
// drain that times out still reports the partial result, with 504.
func (h *Handler) stopListener(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.StopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.stopListener").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.ListenerService.Stop(r.Context(), req)
	if err != nil && !errors.Is(err, listener.ErrShutdownTimeout) {
		log.Err(err).Str("func", "*Handler.stopListener").Msg("error stopping listener")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	status := http.StatusOK
	if err != nil {
		status = statusFromError(err)
	}

	if _, err = utils.WriteJSON(w, result, status); err != nil {
		log.Err(err).Str("func", "*Handler.stopListener").Msg("error writing response")
	}
}

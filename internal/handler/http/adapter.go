package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-http-consumer/internal/app"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/internal/utils"
	"github.com/MKhiriev/go-http-consumer/models"
)

func (h *Handler) verifyAdapter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.verifyAdapter").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result := h.services.AdapterService.Verify(r.Context(), req)

	if _, err := utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.verifyAdapter").Msg("error writing response")
	}
}

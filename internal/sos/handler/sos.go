package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"swasthya/internal/sos/service"
	apperrors "swasthya/pkg/errors"
	httputil "swasthya/pkg/http"
	"swasthya/pkg/logger"
	"swasthya/pkg/model"
)

type SOSHandler struct {
	service service.SOSService
	log     *logger.Logger
}

func NewSOSHandler(svc service.SOSService, log *logger.Logger) *SOSHandler {
	return &SOSHandler{service: svc, log: log}
}

func (h *SOSHandler) SaveSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var settings model.SOSSetting
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("Failed to write error response", "error", writeErr)
		}
		return
	}

	id, err := h.service.SaveSettings(r.Context(), &settings)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("Failed to write error response", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]string{"id": id, "status": "ok"}); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *SOSHandler) Trigger(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var trigger model.SOSTrigger
	if err := json.NewDecoder(r.Body).Decode(&trigger); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("Failed to write error response", "error", writeErr)
		}
		return
	}

	id, err := h.service.Trigger(r.Context(), &trigger)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("Failed to write error response", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, map[string]string{"id": id, "status": model.SOSStatusSent}); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *SOSHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/sos/settings", h.SaveSettings)
	router.POST("/sos/trigger", h.Trigger)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"swasthya/internal/tokens/service"
	apperrors "swasthya/pkg/errors"
	httputil "swasthya/pkg/http"
	"swasthya/pkg/logger"
	"swasthya/pkg/model"
	"swasthya/pkg/validate"
)

type TokenHandler struct {
	service   service.TokenService
	validator *validate.Validator
	log       *logger.Logger
}

func NewTokenHandler(service service.TokenService, log *logger.Logger) *TokenHandler {
	return &TokenHandler{
		service:   service,
		validator: validate.New(),
		log:       log,
	}
}

// UpdateCurrent unconditionally overwrites the currently-served token for a
// doctor+date queue. Used by hospital-desk tooling.
func (h *TokenHandler) UpdateCurrent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var update model.TokenUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateCurrent", "error", writeErr)
		}
		return
	}

	if err := h.validator.Struct(&update); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.Validation("Invalid token update", map[string]any{"error": err.Error()})); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateCurrent", "error", writeErr)
		}
		return
	}

	if err := h.service.SetCurrent(r.Context(), &update); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateCurrent", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]string{"status": "ok"}); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateCurrent", "error", err)
	}
}

// Status serves the lastToken/currentToken pair for waiting-room displays.
// Read-only; an unknown queue yields zeroes with 200, never 404.
func (h *TokenHandler) Status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	doctorID := query.Get("doctor_id")
	date := query.Get("date")

	status, err := h.service.Status(r.Context(), doctorID, date)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Status", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, status); err != nil {
		h.log.Error("failed to write success response", "handler", "Status", "error", err)
	}
}

func (h *TokenHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/token/update", h.UpdateCurrent)
	router.GET("/token/status", h.Status)
}

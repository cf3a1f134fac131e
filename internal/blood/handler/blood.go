package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"swasthya/internal/blood/service"
	apperrors "swasthya/pkg/errors"
	httputil "swasthya/pkg/http"
	"swasthya/pkg/logger"
	"swasthya/pkg/model"
)

type BloodHandler struct {
	service service.BloodService
	log     *logger.Logger
}

func NewBloodHandler(svc service.BloodService, log *logger.Logger) *BloodHandler {
	return &BloodHandler{service: svc, log: log}
}

func (h *BloodHandler) CreateRequest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request model.BloodRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	id, err := h.service.CreateRequest(r.Context(), &request)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteCreated(w, map[string]string{"id": id}); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *BloodHandler) ListRequests(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	requests, err := h.service.ListRequests(r.Context(),
		query.Get("city"),
		query.Get("blood_group"),
		query.Get("status"),
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteSuccess(w, requests); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *BloodHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("Failed to write error response", "error", writeErr)
	}
}

func (h *BloodHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/blood/requests", h.CreateRequest)
	router.GET("/blood/requests", h.ListRequests)
}

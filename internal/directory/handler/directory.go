package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"swasthya/internal/directory/service"
	apperrors "swasthya/pkg/errors"
	httputil "swasthya/pkg/http"
	"swasthya/pkg/logger"
	"swasthya/pkg/model"
)

type DirectoryHandler struct {
	service service.DirectoryService
	log     *logger.Logger
}

func NewDirectoryHandler(svc service.DirectoryService, log *logger.Logger) *DirectoryHandler {
	return &DirectoryHandler{service: svc, log: log}
}

func (h *DirectoryHandler) CreateHospital(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var hospital model.Hospital
	if err := json.NewDecoder(r.Body).Decode(&hospital); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	id, err := h.service.CreateHospital(r.Context(), &hospital)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteCreated(w, map[string]string{"id": id}); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *DirectoryHandler) ListHospitals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	hospitals, err := h.service.ListHospitals(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteSuccess(w, hospitals); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *DirectoryHandler) CreateDoctor(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var doctor model.Doctor
	if err := json.NewDecoder(r.Body).Decode(&doctor); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	id, err := h.service.CreateDoctor(r.Context(), &doctor)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteCreated(w, map[string]string{"id": id}); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *DirectoryHandler) ListDoctors(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	doctors, err := h.service.ListDoctors(r.Context(), query.Get("hospital_id"), query.Get("department"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteSuccess(w, doctors); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *DirectoryHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("Failed to write error response", "error", writeErr)
	}
}

func (h *DirectoryHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/hospitals", h.CreateHospital)
	router.GET("/hospitals", h.ListHospitals)
	router.POST("/doctors", h.CreateDoctor)
	router.GET("/doctors", h.ListDoctors)
}

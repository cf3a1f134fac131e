package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"swasthya/internal/family/service"
	apperrors "swasthya/pkg/errors"
	httputil "swasthya/pkg/http"
	"swasthya/pkg/logger"
	"swasthya/pkg/model"
)

type FamilyHandler struct {
	service service.FamilyService
	log     *logger.Logger
}

func NewFamilyHandler(svc service.FamilyService, log *logger.Logger) *FamilyHandler {
	return &FamilyHandler{service: svc, log: log}
}

func (h *FamilyHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var profile model.FamilyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	id, err := h.service.CreateProfile(r.Context(), &profile)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteCreated(w, map[string]string{"id": id}); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *FamilyHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	profiles, err := h.service.ListProfiles(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteSuccess(w, profiles); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *FamilyHandler) AddVaccination(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var item model.VaccinationItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}
	h.writeStatus(w, h.service.AddVaccination(r.Context(), ps.ByName("id"), &item))
}

func (h *FamilyHandler) AddSugarLog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var entry model.BloodSugarLog
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}
	h.writeStatus(w, h.service.AddSugarLog(r.Context(), ps.ByName("id"), &entry))
}

func (h *FamilyHandler) AddReminder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var reminder model.MedicineReminder
	if err := json.NewDecoder(r.Body).Decode(&reminder); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}
	h.writeStatus(w, h.service.AddReminder(r.Context(), ps.ByName("id"), &reminder))
}

func (h *FamilyHandler) AddAppointment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var appt model.DiaryAppointment
	if err := json.NewDecoder(r.Body).Decode(&appt); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}
	h.writeStatus(w, h.service.AddAppointment(r.Context(), ps.ByName("id"), &appt))
}

func (h *FamilyHandler) writeStatus(w http.ResponseWriter, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := httputil.WriteSuccess(w, map[string]string{"status": "ok"}); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *FamilyHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("Failed to write error response", "error", writeErr)
	}
}

func (h *FamilyHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/family", h.Create)
	router.GET("/family", h.List)
	router.POST("/family/:id/vaccinations", h.AddVaccination)
	router.POST("/family/:id/sugar-logs", h.AddSugarLog)
	router.POST("/family/:id/reminders", h.AddReminder)
	router.POST("/family/:id/appointments", h.AddAppointment)
}

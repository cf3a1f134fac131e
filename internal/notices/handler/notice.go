package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"swasthya/internal/notices/service"
	apperrors "swasthya/pkg/errors"
	httputil "swasthya/pkg/http"
	"swasthya/pkg/logger"
	"swasthya/pkg/model"
)

type NoticeHandler struct {
	service service.NoticeService
	log     *logger.Logger
}

func NewNoticeHandler(svc service.NoticeService, log *logger.Logger) *NoticeHandler {
	return &NoticeHandler{service: svc, log: log}
}

func (h *NoticeHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var notice model.HealthNotice
	if err := json.NewDecoder(r.Body).Decode(&notice); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	id, err := h.service.Create(r.Context(), &notice)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteCreated(w, map[string]string{"id": id}); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *NoticeHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	notices, err := h.service.List(r.Context(), query.Get("city"), query.Get("region"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteSuccess(w, notices); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *NoticeHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("Failed to write error response", "error", writeErr)
	}
}

func (h *NoticeHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/notices", h.Create)
	router.GET("/notices", h.List)
}

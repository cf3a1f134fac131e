package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"swasthya/internal/orders/service"
	apperrors "swasthya/pkg/errors"
	httputil "swasthya/pkg/http"
	"swasthya/pkg/logger"
	"swasthya/pkg/model"
)

type OrderHandler struct {
	service service.OrderService
	log     *logger.Logger
}

func NewOrderHandler(svc service.OrderService, log *logger.Logger) *OrderHandler {
	return &OrderHandler{service: svc, log: log}
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var order model.MedicineOrder
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	placed, err := h.service.Place(r.Context(), &order)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteCreated(w, map[string]string{
		"id":            placed.ID,
		"status":        placed.Status,
		"tracking_code": placed.TrackingCode,
	}); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	orders, err := h.service.ListByUser(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteSuccess(w, orders); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *OrderHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("Failed to write error response", "error", writeErr)
	}
}

func (h *OrderHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/orders", h.Place)
	router.GET("/orders", h.List)
}

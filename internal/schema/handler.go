package schema

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	httputil "swasthya/pkg/http"
	"swasthya/pkg/logger"
)

type Handler struct {
	log *logger.Logger
}

func NewHandler(log *logger.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, Registry); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/schema", h.Get)
}

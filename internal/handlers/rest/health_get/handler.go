package health_get

import (
	"encoding/json"
	"net/http"

	"shop/internal/dto"
	"shop/pkg/logger"
)

const statusOK = "ok"

type Handler struct {
	log         handlerLogger
	serviceName string
}

func New(log handlerLogger, serviceName string) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:         handlerLog,
		serviceName: serviceName,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := dto.HealthResponse{
		Status:  statusOK,
		Service: h.serviceName,
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

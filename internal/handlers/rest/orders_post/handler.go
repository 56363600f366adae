package orders_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shop/internal/dto"
	"shop/internal/entities"
	"shop/internal/service/order"
	"shop/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	lines := make([]entities.OrderLineCreate, len(orderCreateDTO.Lines))
	for i, line := range orderCreateDTO.Lines {
		if line.UnitPrice == nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		lines[i] = entities.OrderLineCreate{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: *line.UnitPrice,
		}
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), entities.OrderCreate{
		PayerID: orderCreateDTO.PayerID,
		Lines:   lines,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create order")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// a FAILED order is still a created order
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.OrderFromDomain(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

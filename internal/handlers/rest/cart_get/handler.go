package cart_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"shop/internal/dto"
	"shop/internal/service/cart"
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
	payerID := mux.Vars(r)["user_id"]

	items, err := h.service.GetCart(r.Context(), payerID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrValidation):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get cart")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	itemsDTO := make([]dto.CartItem, len(items))
	for i := range items {
		itemsDTO[i] = dto.CartItemFromDomain(&items[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(itemsDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

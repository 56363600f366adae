package cart_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"shop/internal/dto"
	"shop/internal/entities"
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

	var itemCreateDTO dto.CartItemCreate
	err := json.NewDecoder(r.Body).Decode(&itemCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	item, err := h.service.AddItem(r.Context(), entities.CartItemModify{
		PayerID:   &payerID,
		ProductID: &itemCreateDTO.ProductID,
		Quantity:  itemCreateDTO.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrValidation):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("add cart item")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.CartItemFromDomain(item))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

package products_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shop/internal/dto"
	"shop/internal/entities"
	"shop/internal/service/catalog"
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
	var productCreateDTO dto.ProductCreate
	err := json.NewDecoder(r.Body).Decode(&productCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), entities.ProductModify{
		ID:          productCreateDTO.ID,
		Name:        &productCreateDTO.Name,
		Price:       productCreateDTO.Price,
		Description: productCreateDTO.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrValidation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, catalog.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create product")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.ProductFromDomain(product))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

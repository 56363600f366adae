package products_get

import (
	"encoding/json"
	"net/http"

	"shop/internal/dto"
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
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list products")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	productsDTO := make([]dto.Product, len(products))
	for i := range products {
		productsDTO[i] = dto.ProductFromDomain(&products[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(productsDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

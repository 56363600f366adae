package orders_get

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

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
	query := r.URL.Query()

	limit, err := parseUintParam(query.Get("limit"), entities.DefaultOrdersLimit)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	offset, err := parseUintParam(query.Get("offset"), entities.DefaultOrdersOffset)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntities, err := h.service.ListOrders(r.Context(), entities.Pagination{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		if errors.Is(err, order.ErrValidation) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.log.With(
			logger.NewField("error", err),
		).Error("list orders")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.OrderListFromDomain(orderEntities))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// parseUintParam rejects negative and non-integer values and anything above
// bigint range.
func parseUintParam(raw string, fallback uint64) (uint64, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", order.ErrInvalidPagination, raw)
	}
	return value, nil
}

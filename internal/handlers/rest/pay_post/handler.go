package pay_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shop/internal/dto"
	"shop/internal/entities"
	"shop/internal/service/payment"
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
	var requestDTO dto.PaymentRequest
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil || requestDTO.Amount == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Pay(r.Context(), entities.PaymentRequest{
		PayerID: requestDTO.PayerID,
		Amount:  *requestDTO.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrValidation):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("pay")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// the caller reads the decision from the status code
	status := http.StatusOK
	if !result.Approved() {
		status = http.StatusPaymentRequired
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(dto.PaymentResponse{
		Status:  result.Status.String(),
		PayerID: result.PayerID,
		Amount:  result.Amount.String(),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/shopspring/decimal"
	"shop/internal/dto"
	"shop/internal/entities"
	"shop/internal/service/order_status"
	"shop/pkg/logger"
)

type Handler struct {
	orderStatusService       Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderStatusService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order.status.changed"))

	return &Handler{
		orderStatusService:       orderStatusService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages channel closed, leaving ConsumeClaim")
				return nil
			}

			if h.messageProcessing(sess, message) {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("session context done, leaving ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message and reports whether ConsumeClaim
// must stop. The message is left unmarked only when processing was cut short
// by cancellation, so it is delivered again.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	event, err := decodeEvent(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("bad order status message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status.String()),
		logger.NewField("offset", message.Offset),
	)

	err = h.orderStatusService.ProcessOrderStatusChange(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("processing cancelled, message will be redelivered")
			return true

		case errors.Is(err, order_status.ErrUndefinedStatus):
			msgLog.Info("no reaction for order status, skipped")

		case errors.Is(err, order_status.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("invalid order status event, skipped")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("order status event not processed")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order status event processed")
	sess.MarkMessage(message, "")
	return false
}

func decodeEvent(value []byte) (entities.OrderStatusEvent, error) {
	var payload dto.OrderStatusChanged
	if err := json.Unmarshal(value, &payload); err != nil {
		return entities.OrderStatusEvent{}, err
	}

	total := decimal.Zero
	if payload.Total != "" {
		var err error
		total, err = decimal.NewFromString(payload.Total)
		if err != nil {
			return entities.OrderStatusEvent{}, err
		}
	}

	return entities.OrderStatusEvent{
		OrderID: payload.OrderID,
		PayerID: payload.PayerID,
		Status:  entities.OrderStatusType(payload.Status),
		Total:   total,
	}, nil
}

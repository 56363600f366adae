package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"shop/internal/dto"
	"shop/internal/pkg/middlewares/request_id"
	"shop/pkg/logger"
)

const (
	outcomeApproved = "approved"
	outcomeDeclined = "declined"
	outcomeTimeout  = "timeout"
	outcomeError    = "error"

	// responses are drained up to this size so the connection can be reused
	maxDrainBytes = 64 << 10
)

// Gateway asks a remote payment service to approve a charge. Only an HTTP 200
// answer counts as approval; no request is ever retried.
type Gateway struct {
	log     gatewayLogger
	client  httpClient
	url     string
	timeout time.Duration
}

func New(log gatewayLogger, client httpClient, url string, timeout time.Duration) *Gateway {
	return &Gateway{
		log:     log.With(logger.NewField("component", "payment-gateway")),
		client:  client,
		url:     url,
		timeout: timeout,
	}
}

func (g *Gateway) Confirm(ctx context.Context, amount decimal.Decimal, payerID string) bool {
	start := time.Now()

	outcome, err := g.confirm(ctx, amount, payerID)

	GatewayRequestDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	GatewayRequestsTotal.WithLabelValues(outcome).Inc()

	if err != nil {
		g.log.With(
			logger.NewField("payer_id", payerID),
			logger.NewField("amount", amount.StringFixed(2)),
			logger.NewField("outcome", outcome),
			logger.NewField("error", err),
		).Warn("payment not approved")
		return false
	}

	return outcome == outcomeApproved
}

func (g *Gateway) confirm(ctx context.Context, amount decimal.Decimal, payerID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	body, err := json.Marshal(dto.PaymentRequest{
		PayerID: payerID,
		Amount:  &amount,
	})
	if err != nil {
		return outcomeError, fmt.Errorf("encode payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return outcomeError, fmt.Errorf("build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if id := request_id.FromContext(ctx); id != "" {
		req.Header.Set(request_id.Header, id)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return outcomeTimeout, fmt.Errorf("payment request timed out after %s: %w", g.timeout, err)
		}
		return outcomeError, fmt.Errorf("payment request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return outcomeDeclined, fmt.Errorf("payment service answered %d", resp.StatusCode)
	}

	return outcomeApproved, nil
}

// StubConfirmer approves every charge. It stands in when no payment service
// is configured.
type StubConfirmer struct{}

func (StubConfirmer) Confirm(context.Context, decimal.Decimal, string) bool {
	return true
}

package pending_orders_monitor

import (
	"context"
	"time"

	"shop/pkg/logger"
)

// PendingOrdersMonitor reports orders whose final status write never landed.
// It only observes: stale orders are left as they are.
type PendingOrdersMonitor struct {
	log        taskLogger
	service    Service
	interval   time.Duration
	staleAfter time.Duration
}

func NewPendingOrdersMonitor(log taskLogger, service Service, interval, staleAfter time.Duration) *PendingOrdersMonitor {
	return &PendingOrdersMonitor{
		log:        log.With(logger.NewField("task", "pending orders monitor")),
		service:    service,
		interval:   interval,
		staleAfter: staleAfter,
	}
}

func (p *PendingOrdersMonitor) TTL() time.Duration {
	return p.interval
}

func (p *PendingOrdersMonitor) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	count, err := p.service.CountStalePending(ctxWithTimeout, p.staleAfter)
	if err != nil {
		return err
	}

	StalePendingOrders.Set(float64(count))

	if count > 0 {
		p.log.With(
			logger.NewField("stale_pending_orders", count),
			logger.NewField("stale_after", p.staleAfter.String()),
		).Warn("orders stuck in PENDING")
	}

	return nil
}

func (p *PendingOrdersMonitor) Info() string {
	return "pending orders monitor"
}

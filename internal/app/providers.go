package app

import (
	"context"
	"net/http"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"shop/internal/gateway/http/payment"
	"shop/internal/handlers/tasks/pending_orders_monitor"
	"shop/internal/pkg/config"
	cartRepo "shop/internal/repository/cart"
	orderRepo "shop/internal/repository/order"
	productRepo "shop/internal/repository/product"
	catalogService "shop/internal/service/catalog"
	orderService "shop/internal/service/order"
	paymentService "shop/internal/service/payment"
	"shop/pkg/background"
	"shop/pkg/logger"
	"shop/pkg/querier"
	"shop/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCartRepository(querier *querier.Querier) *cartRepo.Repository {
	return cartRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

// providePaymentConfirmer approves locally when PAYMENT_URL is unset.
func providePaymentConfirmer(log logger.Logger, cfg *config.Config) orderService.PaymentConfirmer {
	if cfg.Payment.URL == "" {
		log.Warn("PAYMENT_URL is not set, every order will be approved")
		return payment.StubConfirmer{}
	}
	return payment.New(log, &http.Client{}, cfg.Payment.URL, cfg.Payment.Timeout)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	txManager orderService.TxManager,
	confirmer orderService.PaymentConfirmer,
	clock orderService.Clock,
	publisher orderService.EventPublisher,
) *orderService.Service {
	return orderService.New(log, repository, txManager, confirmer, clock, publisher)
}

func provideServiceCatalog(
	log logger.Logger,
	repository catalogService.Repository,
	txManager catalogService.TxManager,
	cache catalogService.Cache,
	cfg *config.Config,
) *catalogService.Catalog {
	return catalogService.New(log, repository, txManager, cache, cfg.Redis.CacheTTL)
}

func provideServicePayment(log logger.Logger, cfg *config.Config) *paymentService.Decider {
	return paymentService.New(log, cfg.Payment.ApprovalRate, paymentService.GlobalSource{})
}

func providePendingOrdersMonitorTask(
	log logger.Logger,
	orderService pending_orders_monitor.Service,
	cfg *config.Config,
) *pending_orders_monitor.PendingOrdersMonitor {
	return pending_orders_monitor.NewPendingOrdersMonitor(
		log,
		orderService,
		cfg.Tasks.PendingOrdersCheckInterval,
		cfg.Tasks.PendingOrderStaleAfter,
	)
}

func provideTaskList(
	pendingOrdersMonitorTask *pending_orders_monitor.PendingOrdersMonitor,
) []background.Task {
	return []background.Task{
		pendingOrdersMonitorTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

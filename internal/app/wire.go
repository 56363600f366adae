//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"shop/internal/handlers/tasks/pending_orders_monitor"
	"shop/internal/pkg/config"
	"shop/internal/pkg/factory/clock"
	"shop/internal/pkg/factory/order_handle"

	cartRepo "shop/internal/repository/cart"
	orderRepo "shop/internal/repository/order"
	productRepo "shop/internal/repository/product"
	cartService "shop/internal/service/cart"
	catalogService "shop/internal/service/catalog"
	orderService "shop/internal/service/order"
	orderStatusService "shop/internal/service/order_status"

	"shop/pkg/logger"
	"shop/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeOrderApplication for the HTTP service (cmd/order-service)
func InitializeOrderApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher orderService.EventPublisher,
	cfg *config.Config,
) (*OrderApplication, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		clock.New,

		provideOrderRepository,
		providePaymentConfirmer,
		provideServiceOrder,

		providePendingOrdersMonitorTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(OrderApplication), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.Clock), new(*clock.Clock)),
		wire.Bind(new(pending_orders_monitor.Service), new(*orderService.Service)),
	)
	return &OrderApplication{}, nil
}

// InitializeCartApplication for the HTTP service (cmd/cart-service)
func InitializeCartApplication(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) *CartApplication {
	wire.Build(
		provideQuerier,
		provideCartRepository,
		cartService.New,

		wire.Struct(new(CartApplication), "*"),

		wire.Bind(new(ServiceCart), new(*cartService.Cart)),
		wire.Bind(new(cartService.Repository), new(*cartRepo.Repository)),
	)
	return &CartApplication{}
}

// InitializeCatalogApplication for the HTTP service (cmd/catalog-service)
func InitializeCatalogApplication(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cache catalogService.Cache,
	cfg *config.Config,
) *CatalogApplication {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideProductRepository,
		provideServiceCatalog,

		wire.Struct(new(CatalogApplication), "*"),

		wire.Bind(new(ServiceCatalog), new(*catalogService.Catalog)),
		wire.Bind(new(catalogService.Repository), new(*productRepo.Repository)),
		wire.Bind(new(catalogService.TxManager), new(*tx.Manager)),
	)
	return &CatalogApplication{}
}

// InitializePaymentApplication for the HTTP service (cmd/payment-service)
func InitializePaymentApplication(
	log logger.Logger,
	cfg *config.Config,
) *PaymentApplication {
	wire.Build(
		provideServicePayment,

		wire.Struct(new(PaymentApplication), "*"),
	)
	return &PaymentApplication{}
}

// InitializeKafkaWorkerApp for the Kafka worker (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) *KafkaWorkerApp {
	wire.Build(
		provideQuerier,
		provideCartRepository,
		cartService.New,

		order_handle.NewStatusHandlerFactory,
		orderStatusService.New,

		wire.Struct(new(KafkaWorkerApp), "*"),

		wire.Bind(new(cartService.Repository), new(*cartRepo.Repository)),
		wire.Bind(new(orderStatusService.CartService), new(*cartService.Cart)),
		wire.Bind(new(orderStatusService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),
	)
	return &KafkaWorkerApp{}
}

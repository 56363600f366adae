package app

import (
	"shop/internal/handlers/rest/cart_delete"
	"shop/internal/handlers/rest/cart_get"
	"shop/internal/handlers/rest/cart_post"
	"shop/internal/handlers/rest/orders_get"
	"shop/internal/handlers/rest/orders_post"
	"shop/internal/handlers/rest/products_get"
	"shop/internal/handlers/rest/products_post"
	orderStatusService "shop/internal/service/order_status"
	paymentService "shop/internal/service/payment"
	"shop/pkg/background"
)

type OrderApplication struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_post.Service
	orders_get.Service
}

type CartApplication struct {
	ServiceCart ServiceCart
}

type ServiceCart interface {
	cart_get.Service
	cart_post.Service
	cart_delete.Service
}

type CatalogApplication struct {
	ServiceCatalog ServiceCatalog
}

type ServiceCatalog interface {
	products_get.Service
	products_post.Service
}

type PaymentApplication struct {
	ServicePayment *paymentService.Decider
}

type KafkaWorkerApp struct {
	OrderStatusService *orderStatusService.Service
}

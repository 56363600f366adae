package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Orders accepted by the saga, by the status they ended in",
		},
		[]string{"status"},
	)

	OrderEventsPublishFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_events_publish_failed_total",
			Help: "Order status events that could not be published",
		},
	)
)

package pending_orders_monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var StalePendingOrders = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "orders_stale_pending",
		Help: "Orders left PENDING longer than the stale threshold",
	},
)

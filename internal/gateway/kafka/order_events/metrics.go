package order_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_messages_published_total",
		Help: "Messages sent to Kafka by topic and result",
	},
	[]string{"topic", "result"},
)

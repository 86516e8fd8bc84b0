package server

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staffadmin_http_requests_total",
		Help: "HTTP requests handled, by method, route and status.",
	}, []string{"method", "route", "status"})

	calculationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffadmin_staffing_calculations_total",
		Help: "Staffing ratio calculations served.",
	})

	capacityPlansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffadmin_capacity_plans_total",
		Help: "Capacity plan simulations served.",
	})
)

func observeRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connectly_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// VisibilityDenials counts reads and writes refused by the visibility engine.
	VisibilityDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connectly_visibility_denials_total",
		Help: "Total number of requests denied by post visibility checks",
	}, []string{"operation"})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the fiber handler recording request metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}

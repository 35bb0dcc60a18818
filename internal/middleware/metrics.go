package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/maldura7/clover-inventory-system/pkg/apperr"
	"github.com/maldura7/clover-inventory-system/prometheus"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request count and latency per route.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The error handler has not rendered the response yet.
			var e *apperr.Error
			var fe *fiber.Error
			switch {
			case errors.As(err, &e):
				status = e.Status
			case errors.As(err, &fe):
				status = fe.Code
			default:
				status = fiber.StatusInternalServerError
			}
		}

		path := c.Route().Path
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		prometheus.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
		prometheus.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

		return err
	}
}

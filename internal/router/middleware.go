package router

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spendwise/backend/internal/auth"
	"github.com/spendwise/backend/internal/controllers"
	"github.com/spendwise/backend/internal/httperror"
	"github.com/spendwise/backend/internal/models"
)

// Authentication errors. The strings are part of the API contract.
var (
	errNoToken      = errors.New("Please authenticate")
	errTokenExpired = errors.New("Session expired. Please login again.")
)

// RequireLogin resolves the caller from the Authorization header and
// stores the user ID in the request context. Requests without a valid
// token are rejected before any handler runs.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(errNoToken))
			return
		}

		userID, err := auth.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(errTokenExpired))
			return
		}

		// The token may outlive the user
		var user models.User
		err = models.DB.First(&user, "id = ?", userID).Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(errNoToken))
			return
		}

		c.Set(controllers.ContextUserID, user.ID)
		c.Next()
	}
}

var metrics = []prometheus.Collector{
	requestCount,
	requestDuration,
}

// registerPrometheusMetrics registers all Prometheus metrics
// with the default registry.
func registerPrometheusMetrics() error {
	for _, c := range metrics {
		if err := prometheus.Register(c); err != nil {
			var registered prometheus.AlreadyRegisteredError
			if errors.As(err, &registered) {
				continue
			}

			return fmt.Errorf("could not register %s with Prometheus", c)
		}
	}

	return nil
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}

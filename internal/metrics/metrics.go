package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ProgressMerges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "study_progress_merges_total",
			Help: "Progress merge attempts by outcome",
		},
		[]string{"result"},
	)

	QuizSessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "study_quiz_sessions_created_total",
			Help: "Quiz sessions created",
		},
	)

	QuizEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "study_quiz_evaluations_total",
			Help: "Quiz evaluations by outcome",
		},
		[]string{"result"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "study_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Handler exposes the default registry for scraping.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Middleware records per-route request latency.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		requestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

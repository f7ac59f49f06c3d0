package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "growth_insights"

var (
	// Métricas de requisição
	RequestDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP em segundos",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	APIRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total de requisições recebidas pela API",
		},
		[]string{"method", "path"},
	)

	APIErrorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_errors_total",
			Help:      "Total de requisições finalizadas com status >= 400",
		},
		[]string{"method", "path", "status"},
	)

	// Limpeza de séries temporais
	RetentionDeletedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retention_deleted_rows_total",
			Help:      "Total de linhas removidas pela rotina de retenção",
		},
		[]string{"table"},
	)

	RetentionRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retention_runs_total",
			Help:      "Execuções da rotina de retenção por resultado",
		},
		[]string{"result"},
	)
)

// Instrument registra contagem, duração e erros de uma rota. O path é o
// padrão registrado no router, não a URL concreta.
func Instrument(method, path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			APIRequestCounter.With(prometheus.Labels{
				"method": method,
				"path":   path,
			}).Inc()

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			status := strconv.Itoa(sw.status)
			RequestDurationHistogram.With(prometheus.Labels{
				"method": method,
				"path":   path,
				"status": status,
			}).Observe(time.Since(start).Seconds())

			if sw.status >= 400 {
				APIErrorCounter.With(prometheus.Labels{
					"method": method,
					"path":   path,
					"status": status,
				}).Inc()
			}
		})
	}
}

// RecordRetention soma as linhas removidas de uma tabela
func RecordRetention(table string, deleted int64) {
	if deleted <= 0 {
		return
	}
	RetentionDeletedRows.WithLabelValues(table).Add(float64(deleted))
}

func RecordRetentionRun(result string) {
	RetentionRuns.WithLabelValues(result).Inc()
}

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

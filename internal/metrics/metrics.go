package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes counters for login attempts and console actions,
// and a histogram for database query duration.
type Metrics struct {
	LoginAttempts   *prometheus.CounterVec
	ConsoleActions  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance and registers every collector with reg.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		LoginAttempts: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_login_attempts_total",
			Help: "Total login attempts by role and outcome.",
		}, []string{"role", "status"}), // role: 'admin', 'employee'; status: 'success', 'failure', 'not_configured'
		ConsoleActions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_console_actions_total",
			Help: "Total menu actions selected in the console.",
		}, []string{"menu", "action"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hestia_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'get_employee_by_id', 'update_employee'
	}

	for _, role := range []string{RoleAdmin, RoleEmployee} {
		metrics.LoginAttempts.WithLabelValues(role, StatusSuccess)
		metrics.LoginAttempts.WithLabelValues(role, StatusFailure)
	}

	return metrics
}

// Label values shared by callers.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"

	StatusSuccess       = "success"
	StatusFailure       = "failure"
	StatusNotConfigured = "not_configured"
)

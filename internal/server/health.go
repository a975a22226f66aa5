package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/hestia/internal/credentials"
)

type DBPinger interface {
	Ping(ctx context.Context) error
}

// CredentialGetter reports whether the admin credential can be read.
type CredentialGetter interface {
	Get(ctx context.Context) (string, error)
}

type HealthChecker struct {
	db    DBPinger
	creds CredentialGetter
	log   *slog.Logger
}

func NewHealthChecker(db DBPinger, creds CredentialGetter, log *slog.Logger) *HealthChecker {
	return &HealthChecker{
		db:    db,
		creds: creds,
		log:   log,
	}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	var err error
	status := make(map[string]string)
	overallStatus := http.StatusOK

	if err = h.db.Ping(req.Context()); err != nil {
		status["database"] = "unavailable"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: DB ping", "error", err)
	} else {
		status["database"] = "ok"
	}

	// A missing admin credential is reported but does not fail the health check.
	_, err = h.creds.Get(req.Context())
	switch {
	case err == nil:
		status["admin_credentials"] = "ok"
	case errors.Is(err, credentials.ErrNotConfigured):
		status["admin_credentials"] = "not_configured"
	default:
		status["admin_credentials"] = "unavailable"
		h.log.WarnContext(req.Context(), "Health check failed: admin credentials", "error", err)
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err = json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", "error", err)
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}

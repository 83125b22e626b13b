package impl

import (
	"io"
	"log/slog"

	"locus/internal/domain/entity"
	"locus/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry(), "test")
}

func adminSession() *entity.Session {
	return &entity.Session{AccountID: "uid-admin", Email: "admin@example.com", Role: entity.RoleAdmin, State: entity.SessionResolved}
}

func userSession() *entity.Session {
	return &entity.Session{AccountID: "uid-user", Email: "ana@example.com", Role: entity.RoleUser, State: entity.SessionResolved}
}

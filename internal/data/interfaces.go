package data

import (
	"context"

	"github.com/songzhibin97/cosmoboard/internal/models"
)

// SnapshotProvider 负责产出每一轮的指标快照
type SnapshotProvider interface {
	// FetchSnapshot never returns an error; failures yield the fallback snapshot
	FetchSnapshot(ctx context.Context) models.MetricsSnapshot
}

// StatsSource retrieves the Atmos overall-stats payload
type StatsSource interface {
	Name() string
	CollectOverallStats(ctx context.Context) (*models.OverallStats, error)
}

// Notifier surfaces a non-fatal warning to the dashboard
type Notifier interface {
	Warn(message string)
}

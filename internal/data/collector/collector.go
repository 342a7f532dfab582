package collector

import (
	"context"
	"errors"
	"fmt"

	"github.com/songzhibin97/cosmoboard/internal/data"
	"github.com/songzhibin97/cosmoboard/internal/models"
)

// FallbackWarning is shown on the dashboard whenever live data could not be fetched.
const FallbackWarning = "Failed to fetch live data. Using cached/fallback data."

// SupraProtocolCount has no live source yet.
const SupraProtocolCount = 12

// SnapshotCollector implements SnapshotProvider on top of one or more stats sources.
// Sources are tried in order; the first success wins.
type SnapshotCollector struct {
	sources  []data.StatsSource
	notifier data.Notifier
	logger   Logger
}

type Logger interface {
	Error(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
}

func NewSnapshotCollector(sources []data.StatsSource, notifier data.Notifier, logger Logger) *SnapshotCollector {
	return &SnapshotCollector{
		sources:  sources,
		notifier: notifier,
		logger:   logger,
	}
}

// FetchSnapshot implements SnapshotProvider interface
func (c *SnapshotCollector) FetchSnapshot(ctx context.Context) models.MetricsSnapshot {
	stats, err := c.collect(ctx)
	if err != nil {
		c.logger.Error("failed to fetch live data, using fallback", "error", err)
		if c.notifier != nil {
			c.notifier.Warn(FallbackWarning)
		}
		return FallbackSnapshot()
	}

	return LiveSnapshot(stats)
}

func (c *SnapshotCollector) collect(ctx context.Context) (*models.OverallStats, error) {
	if len(c.sources) == 0 {
		return nil, errors.New("no stats sources configured")
	}

	var errs []error
	for _, source := range c.sources {
		stats, err := source.CollectOverallStats(ctx)
		if err == nil && stats != nil {
			c.logger.Info("collected overall stats", "source", source.Name())
			return stats, nil
		}
		if err == nil {
			err = errors.New("empty stats")
		}
		errs = append(errs, fmt.Errorf("%s: %w", source.Name(), err))
	}

	return nil, errors.Join(errs...)
}

// LiveSnapshot reshapes the overall-stats payload. Chain TVL reuses the protocol
// TVL and token stats stay at their placeholders.
func LiveSnapshot(stats *models.OverallStats) models.MetricsSnapshot {
	tvl := optional(stats.TotalPoolTvlUsd)

	volume24h := models.Unknown()
	if b := stats.Breakdown; b != nil && b.DexVolume != nil && b.SwapStepVolume != nil {
		volume24h = models.Known(*b.DexVolume + *b.SwapStepVolume)
	}

	return models.MetricsSnapshot{
		Protocol: models.ProtocolStats{
			TVL:          tvl,
			Volume24h:    volume24h,
			Volume7d:     optional(stats.TotalVolume),
			VolumeChange: models.Known(0), // the endpoint has no change figure
		},
		Chain: models.ChainStats{
			TVL:       tvl,
			Protocols: SupraProtocolCount,
		},
		Token:  placeholderToken(),
		Source: models.SourceLive,
	}
}

// FallbackSnapshot is the static record used whenever live retrieval fails.
func FallbackSnapshot() models.MetricsSnapshot {
	return models.MetricsSnapshot{
		Protocol: models.ProtocolStats{
			TVL:          models.Known(12_500_000),
			Volume24h:    models.Known(850_000),
			Volume7d:     models.Known(4_200_000),
			VolumeChange: models.Known(15.3),
		},
		Chain: models.ChainStats{
			TVL:       models.Known(45_000_000),
			Protocols: SupraProtocolCount,
		},
		Token:  placeholderToken(),
		Source: models.SourceFallback,
	}
}

// TODO: query the Atmos GraphQL gateway once the $COSMO query shape is confirmed.
func placeholderToken() models.TokenStats {
	return models.TokenStats{
		Price:       models.Known(0.0234),
		PriceChange: models.Known(5.2),
		MarketCap:   models.Known(2_340_000),
		Volume24h:   models.Known(125_000),
	}
}

func optional(v *float64) models.Value {
	if v == nil {
		return models.Unknown()
	}
	return models.Known(*v)
}

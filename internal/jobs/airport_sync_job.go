package jobs

import (
	"context"
	"time"

	"flightdesk/dispatch/internal/logging"
)

// AirportSource imports the airport dataset and reports how many rows exist.
type AirportSource interface {
	LoadFromSource(ctx context.Context) (int, error)
	Count(ctx context.Context) (int64, error)
}

// AirportSyncJob keeps the airport reference table populated from the
// configured dataset.
type AirportSyncJob struct {
	source AirportSource
}

func NewAirportSyncJob(source AirportSource) *AirportSyncJob {
	return &AirportSyncJob{source: source}
}

// Run performs one import.
func (j *AirportSyncJob) Run(ctx context.Context) error {
	start := time.Now()
	imported, err := j.source.LoadFromSource(ctx)
	if err != nil {
		return err
	}
	logging.Info("[AirportSyncJob] Sync complete",
		"imported", imported,
		"duration", time.Since(start).String(),
	)
	return nil
}

// shouldRunInitialSync is true when the airport table is empty, so a fresh
// database can resolve coordinates without waiting a full interval.
func (j *AirportSyncJob) shouldRunInitialSync(ctx context.Context) bool {
	count, err := j.source.Count(ctx)
	if err != nil {
		logging.Warn("[AirportSyncJob] Could not count airports, running initial sync", "error", err.Error())
		return true
	}
	return count == 0
}

// RunScheduled seeds an empty table immediately and then re-imports every
// interval until ctx is cancelled.
func (j *AirportSyncJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if j.shouldRunInitialSync(ctx) {
		if err := j.Run(ctx); err != nil {
			logging.Error("[AirportSyncJob] Error in initial run", "error", err.Error())
		}
	}

	for {
		select {
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				logging.Error("[AirportSyncJob] Error in scheduled run", "error", err.Error())
			}
		case <-ctx.Done():
			logging.Info("[AirportSyncJob] Shutting down scheduled sync")
			return
		}
	}
}

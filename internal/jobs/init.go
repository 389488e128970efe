package jobs

import (
	"context"
	"time"

	"flightdesk/dispatch/internal/logging"
)

// InitializeJobs initializes and starts all background jobs. A zero interval
// disables the airport sync.
func InitializeJobs(ctx context.Context, airports AirportSource, airportSyncInterval time.Duration) *AirportSyncJob {
	if airportSyncInterval <= 0 {
		logging.Info("Airport sync job disabled")
		return nil
	}

	airportSyncJob := NewAirportSyncJob(airports)

	// Start scheduled sync job in background
	go airportSyncJob.RunScheduled(ctx, airportSyncInterval)

	logging.Info("Airport sync job started", "interval", airportSyncInterval.String())
	return airportSyncJob
}

package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAirportSource struct {
	count    int64
	countErr error
	loadErr  error
	loads    atomic.Int32
}

func (f *fakeAirportSource) LoadFromSource(ctx context.Context) (int, error) {
	f.loads.Add(1)
	return 3, f.loadErr
}

func (f *fakeAirportSource) Count(ctx context.Context) (int64, error) {
	return f.count, f.countErr
}

func TestAirportSyncJob_InitialSync(t *testing.T) {
	cases := []struct {
		name     string
		source   *fakeAirportSource
		expected bool
	}{
		{"empty table", &fakeAirportSource{}, true},
		{"already seeded", &fakeAirportSource{count: 7000}, false},
		{"count fails", &fakeAirportSource{countErr: errors.New("db down")}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			job := NewAirportSyncJob(tc.source)
			assert.Equal(t, tc.expected, job.shouldRunInitialSync(context.Background()))
		})
	}
}

func TestAirportSyncJob_RunPropagatesError(t *testing.T) {
	job := NewAirportSyncJob(&fakeAirportSource{loadErr: errors.New("HTTP 503")})
	assert.EqualError(t, job.Run(context.Background()), "HTTP 503")
}

func TestAirportSyncJob_RunScheduledStopsOnCancel(t *testing.T) {
	source := &fakeAirportSource{}
	job := NewAirportSyncJob(source)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.RunScheduled(ctx, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return source.loads.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunScheduled did not return after cancel")
	}
}

package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbms/talent-bms-api/internal/domain"
)

// stubBackfiller lets the test control how long a run takes.
type stubBackfiller struct {
	mu      sync.Mutex
	calls   int
	result  *domain.BackfillResult
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *stubBackfiller) ResolveProductLinks(ctx context.Context) (*domain.BackfillResult, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}

	return s.result, s.err
}

func TestRunBackfill(t *testing.T) {
	stub := &stubBackfiller{
		result: &domain.BackfillResult{Resolved: 5, Unresolved: 1, RanAt: time.Now()},
	}

	service := &BackfillSyncService{backfiller: stub}

	result, err := service.RunBackfill(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.Resolved)

	status := service.Status()
	assert.False(t, status.Running)
	assert.NotNil(t, status.LastStartedAt)
	assert.NotNil(t, status.LastCompletedAt)
	assert.Equal(t, result, status.LastResult)
}

func TestRunBackfill_RefusesOverlappingRuns(t *testing.T) {
	stub := &stubBackfiller{
		result:  &domain.BackfillResult{RanAt: time.Now()},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}

	service := &BackfillSyncService{backfiller: stub}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = service.RunBackfill(context.Background())
	}()

	<-stub.started

	// A second run while the first is in flight must be rejected.
	_, err := service.RunBackfill(context.Background())
	assert.ErrorIs(t, err, ErrSyncAlreadyRunning)

	status := service.Status()
	assert.True(t, status.Running)

	close(stub.release)
	<-done

	stub.mu.Lock()
	defer stub.mu.Unlock()
	assert.Equal(t, 1, stub.calls)
}

func TestStart_DisabledDoesNotSchedule(t *testing.T) {
	service := &BackfillSyncService{
		config: BackfillSyncConfig{Enabled: false},
	}

	err := service.Start(context.Background())
	assert.NoError(t, err)
}

package resilience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_TripsAfterConsecutiveFailures(t *testing.T) {
	b := NewCircuitBreaker(3, 10*time.Second, 1)

	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.Equal(t, CircuitStateClosed, b.State())

	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.Equal(t, CircuitStateOpen, b.State())
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestCircuitBreaker_RecoversThroughHalfOpen(t *testing.T) {
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	b := NewCircuitBreaker(1, 10*time.Second, 1)
	b.now = func() time.Time { return clock }

	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	clock = clock.Add(11 * time.Second)
	require.Equal(t, CircuitStateHalfOpen, b.State())

	require.NoError(t, b.Allow())
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	b.RecordSuccess()
	require.Equal(t, CircuitStateClosed, b.State())
	require.NoError(t, b.Allow())
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	b := NewCircuitBreaker(1, 10*time.Second, 1)
	b.now = func() time.Time { return clock }

	require.NoError(t, b.Allow())
	b.RecordFailure()

	clock = clock.Add(11 * time.Second)
	require.NoError(t, b.Allow())
	b.RecordFailure()

	require.Equal(t, CircuitStateOpen, b.State())
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestCircuitBreaker_SuccessResetsFailureStreak(t *testing.T) {
	b := NewCircuitBreaker(2, 10*time.Second, 1)

	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.NoError(t, b.Allow())
	b.RecordSuccess()
	require.NoError(t, b.Allow())
	b.RecordFailure()

	require.Equal(t, CircuitStateClosed, b.State())
}

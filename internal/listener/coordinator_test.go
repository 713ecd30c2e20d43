package listener

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/models"
)

func TestDrain_EmptySetCompletesImmediately(t *testing.T) {
	c := NewShutdownCoordinator(NewInFlightSet(), logger.Nop())

	start := time.Now()
	res := c.Drain(time.Second)

	assert.Equal(t, models.DrainResult{Completed: true}, res)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestDrain_CompletesWhenRequestFinishes(t *testing.T) {
	set := NewInFlightSet()
	ticket := set.Add("slow")
	c := NewShutdownCoordinator(set, logger.Nop())

	go func() {
		time.Sleep(30 * time.Millisecond)
		set.Remove(ticket)
	}()

	res := c.Drain(2 * time.Second)
	assert.True(t, res.Completed)
	assert.Zero(t, res.Remaining)
}

func TestDrain_TimesOutWithRemaining(t *testing.T) {
	set := NewInFlightSet()
	set.Add("stuck-1")
	set.Add("stuck-2")
	c := NewShutdownCoordinator(set, logger.Nop())

	start := time.Now()
	res := c.Drain(50 * time.Millisecond)

	assert.Equal(t, models.DrainResult{Completed: false, Remaining: 2}, res)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDrain_WaitsForRequestAddedDuringDrain(t *testing.T) {
	set := NewInFlightSet()
	first := set.Add("first")
	c := NewShutdownCoordinator(set, logger.Nop())

	go func() {
		time.Sleep(10 * time.Millisecond)
		second := set.Add("second")
		set.Remove(first)
		time.Sleep(20 * time.Millisecond)
		set.Remove(second)
	}()

	res := c.Drain(2 * time.Second)
	assert.True(t, res.Completed)
	assert.Equal(t, 0, set.Len())
}

func TestDrain_NonPositiveTimeoutChecksOnce(t *testing.T) {
	set := NewInFlightSet()
	c := NewShutdownCoordinator(set, logger.Nop())
	assert.True(t, c.Drain(0).Completed)

	set.Add("a")
	assert.Equal(t, models.DrainResult{Remaining: 1}, c.Drain(-time.Second))
}

// Package circuitbreaker stops calling a failing dependency for a while and
// then lets single trial calls through until it has recovered.
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State is the breaker position.
type State uint8

const (
	// Closed passes every call through.
	Closed State = 1
	// Open rejects calls until the timeout elapses.
	Open State = 2
	// HalfOpen admits one trial call at a time.
	HalfOpen State = 3
)

// ErrOpen is returned instead of calling through while the breaker is open,
// or while a half-open trial call is already in flight.
var ErrOpen = errors.New("circuit breaker is open")

// Breaker guards calls to a flaky dependency.
type Breaker interface {
	// Call runs service unless the breaker rejects it with ErrOpen.
	Call(service func() error) error
	// State reports the current position.
	State() State
	// Reset closes the breaker and forgets recorded outcomes.
	Reset()
}

type circuitBreaker struct {
	mu    sync.Mutex
	state State
	// size of the window of recent outcomes
	recordLength int
	// how long to stay open before letting a trial call through
	timeout  time.Duration
	openedAt time.Time
	// failure ratio in the window that opens the breaker
	percentile float64
	buffer     []bool
	pos        int
	// consecutive half-open successes needed to close again
	recoveryRequests int
	successCount     int
	// a half-open trial call is running
	trialInFlight bool
	now           func() time.Time
}

// New returns a closed breaker. It opens once failures make up at least
// percentile of the last recordLength calls.
func New(recordLength int, timeout time.Duration, percentile float64, recoveryRequests int) Breaker {
	return newWithClock(recordLength, timeout, percentile, recoveryRequests, time.Now)
}

func newWithClock(recordLength int, timeout time.Duration, percentile float64, recoveryRequests int, now func() time.Time) *circuitBreaker {
	if recordLength < 1 {
		recordLength = 1
	}
	return &circuitBreaker{
		state:            Closed,
		recordLength:     recordLength,
		timeout:          timeout,
		percentile:       percentile,
		buffer:           make([]bool, recordLength),
		recoveryRequests: recoveryRequests,
		now:              now,
	}
}

// Call runs service and records its outcome. In the half-open state only one
// trial call runs at a time; concurrent callers get ErrOpen.
func (cb *circuitBreaker) Call(service func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.openedAt) < cb.timeout {
			cb.mu.Unlock()
			return ErrOpen
		}
		cb.state = HalfOpen
		cb.successCount = 0
	}
	trial := cb.state == HalfOpen
	if trial {
		if cb.trialInFlight {
			cb.mu.Unlock()
			return ErrOpen
		}
		cb.trialInFlight = true
	}
	cb.mu.Unlock()

	err := service()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if trial {
		cb.trialInFlight = false
		if cb.state != HalfOpen {
			return err
		}
		if err != nil {
			cb.trip()
			return err
		}
		cb.successCount++
		if cb.successCount >= cb.recoveryRequests {
			cb.reset()
		}
		return nil
	}

	// Outcomes of calls started before the breaker opened do not count.
	if cb.state != Closed {
		return err
	}

	cb.buffer[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % cb.recordLength

	fails := 0
	for _, failed := range cb.buffer {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(cb.recordLength) >= cb.percentile {
		cb.trip()
	}
	return err
}

// State reports the current position.
func (cb *circuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Reset closes the breaker.
func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successCount = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) reset() {
	clear(cb.buffer)
	cb.successCount = 0
	cb.pos = 0
	cb.state = Closed
}

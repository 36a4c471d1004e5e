package events_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bookswap/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memorySink struct {
	mu   sync.Mutex
	keys []string
	envs []events.Envelope
	err  error
}

func (s *memorySink) Publish(_ context.Context, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, key)
	s.envs = append(s.envs, v.(events.Envelope))
	return s.err
}

func TestRelay_ForwardsEverySignal(t *testing.T) {
	bus := events.NewBus()
	sink := &memorySink{}
	relay := events.NewRelay("test", "node-1", bus, sink, zap.NewNop())

	bus.Publish(events.ListingsChanged)
	bus.Publish(events.AuthChanged)
	relay.Close()

	require.Len(t, sink.envs, 2)
	assert.Equal(t, []string{"listingsChanged", "authChanged"}, sink.keys)
	assert.Equal(t, "node-1", sink.envs[0].Source)
	assert.False(t, sink.envs[0].At.IsZero())

	bus.Publish(events.ListingsChanged)
	assert.Len(t, sink.keys, 2, "closed relay is unsubscribed")
}

func TestRelay_SinkErrorsDoNotReachPublisher(t *testing.T) {
	bus := events.NewBus()
	sink := &memorySink{err: errors.New("broker down")}
	relay := events.NewRelay("test", "node-1", bus, sink, zap.NewNop())

	delivered := false
	bus.Subscribe(events.ListingsChanged, func(events.Signal) { delivered = true })

	assert.NotPanics(t, func() { bus.Publish(events.ListingsChanged) })
	relay.Close()
	assert.True(t, delivered)
	assert.Len(t, sink.envs, 1)

	relay.Close()
}

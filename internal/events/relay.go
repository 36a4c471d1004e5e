package events

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Envelope is the broker message for a relayed signal.
type Envelope struct {
	Signal Signal    `json:"signal"`
	Source string    `json:"source"`
	At     time.Time `json:"at"`
}

// Sink delivers a message to an external broker. key is the routing key or partition key.
type Sink interface {
	Publish(ctx context.Context, key string, v any) error
}

const (
	relayBuffer  = 64
	relayTimeout = 5 * time.Second
)

// Relay forwards every bus signal to a Sink from a background goroutine.
// Listeners on the bus never wait for the broker; when the buffer is full the
// signal is dropped and logged. Broker errors are logged, never returned.
type Relay struct {
	name        string
	source      string
	sink        Sink
	log         *zap.Logger
	queue       chan Envelope
	unsubscribe func()
	wg          sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewRelay subscribes a relay named name to every signal on bus. source
// identifies this process in the envelopes.
func NewRelay(name, source string, bus *Bus, sink Sink, log *zap.Logger) *Relay {
	r := &Relay{
		name:   name,
		source: source,
		sink:   sink,
		log:    log.With(zap.String("relay", name)),
		queue:  make(chan Envelope, relayBuffer),
	}
	r.wg.Add(1)
	go r.run()
	r.unsubscribe = bus.SubscribeAll(r.enqueue)
	return r
}

func (r *Relay) enqueue(sig Signal) {
	env := Envelope{Signal: sig, Source: r.source, At: time.Now().UTC()}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	select {
	case r.queue <- env:
	default:
		r.log.Warn("relay buffer full, dropping signal", zap.String("signal", string(sig)))
	}
}

func (r *Relay) run() {
	defer r.wg.Done()
	for env := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), relayTimeout)
		if err := r.sink.Publish(ctx, string(env.Signal), env); err != nil {
			r.log.Error("failed to relay signal", zap.String("signal", string(env.Signal)), zap.Error(err))
		}
		cancel()
	}
}

// Close detaches the relay from the bus and waits for queued signals to be sent.
func (r *Relay) Close() {
	r.unsubscribe()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	r.wg.Wait()
}

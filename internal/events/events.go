// Package events is the process-wide change notification bus.
//
// Delivery is synchronous: Publish calls every listener for the signal on the
// caller's goroutine, in registration order, before returning. Signals carry
// no payload; listeners re-read whatever state they care about.
package events

import "sync"

// Signal names a kind of change.
type Signal string

const (
	AuthChanged     Signal = "authChanged"
	ListingsChanged Signal = "listingsChanged"
)

// Listener reacts to a signal.
type Listener func(Signal)

// Publisher is the emitting side of the bus.
type Publisher interface {
	Publish(sig Signal)
}

type subscription struct {
	id  uint64
	sig Signal // empty for all signals
	fn  Listener
}

// Bus fans signals out to registered listeners.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
}

var _ Publisher = (*Bus)(nil)

// NewBus creates a bus with no listeners.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for sig and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (b *Bus) Subscribe(sig Signal, fn Listener) (unsubscribe func()) {
	return b.add(sig, fn)
}

// SubscribeAll registers fn for every signal.
func (b *Bus) SubscribeAll(fn Listener) (unsubscribe func()) {
	return b.add("", fn)
}

func (b *Bus) add(sig Signal, fn Listener) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, sig: sig, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers sig to its listeners. Listeners may subscribe or
// unsubscribe while being called; such changes apply from the next Publish.
func (b *Bus) Publish(sig Signal) {
	b.mu.RLock()
	targets := make([]Listener, 0, len(b.subs))
	for _, s := range b.subs {
		if s.sig == "" || s.sig == sig {
			targets = append(targets, s.fn)
		}
	}
	b.mu.RUnlock()

	for _, fn := range targets {
		fn(sig)
	}
}

package signalbus

import "sync"

// SignalBus provides a way to notify named signals across the process. The
// PgSignalBus variant extends the notifications to all processes sharing the
// same database.
type SignalBus interface {
	// Notify will notify all the subscriptions created for the given named signal.
	Notify(name string)

	// Subscribe creates a subscription to the named signal.
	Subscribe(name string) *Subscription
}

var _ SignalBus = &signalBus{}

type signalBus struct {
	mu      sync.RWMutex
	signals map[string]*signal
}

type signal struct {
	name          string
	bus           *signalBus
	mu            sync.Mutex
	subscriptions []*Subscription
}

// NewSignalBus creates a new in memory signal bus.
func NewSignalBus() SignalBus {
	return &signalBus{
		signals: map[string]*signal{},
	}
}

func (sb *signalBus) Notify(name string) {
	sb.mu.RLock()
	s, found := sb.signals[name]
	sb.mu.RUnlock()
	if !found {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subscriptions {
		sub.signal()
	}
}

func (sb *signalBus) Subscribe(name string) *Subscription {
	sb.mu.Lock()
	s, found := sb.signals[name]
	if !found {
		s = &signal{name: name, bus: sb}
		sb.signals[name] = s
	}
	sb.mu.Unlock()

	sub := &Subscription{
		signaled: make(chan struct{}, 1),
		s:        s,
	}

	s.mu.Lock()
	s.subscriptions = append(s.subscriptions, sub)
	s.mu.Unlock()

	return sub
}

// Subscription gets signaled when the named signal it was created for is
// notified. Subscriptions to the same name share the underlying signal struct.
type Subscription struct {
	signaled  chan struct{}
	s         *signal
	closeOnce sync.Once
}

func (sub *Subscription) signal() {
	// non-blocking send, a pending signal is enough
	select {
	case sub.signaled <- struct{}{}:
	default:
	}
}

// Signal returns the channel that receives a message when the subscription
// is notified. Receiving from it consumes the pending signal.
func (sub *Subscription) Signal() <-chan struct{} {
	return sub.signaled
}

// IsSignaled checks if the subscription was notified since the last IsSignaled call.
func (sub *Subscription) IsSignaled() bool {
	select {
	case <-sub.signaled:
		return true
	default:
		return false
	}
}

// Close frees up resources associated with the subscription.
func (sub *Subscription) Close() {
	sub.closeOnce.Do(func() {
		s := sub.s

		s.mu.Lock()
		for i, o := range s.subscriptions {
			if o == sub {
				s.subscriptions = append(s.subscriptions[:i], s.subscriptions[i+1:]...)
				break
			}
		}
		empty := len(s.subscriptions) == 0
		s.mu.Unlock()

		// the last subscription to a name releases the signal itself
		if empty {
			bus := s.bus
			bus.mu.Lock()
			if current, found := bus.signals[s.name]; found && current == s {
				delete(bus.signals, s.name)
			}
			bus.mu.Unlock()
		}
	})
}

package media

import "sync"

// Subscription delivers a handle's events in emission order.
//
// Pending TimeUpdates for the same source coalesce so a slow reader only
// sees the latest position. Every other event is delivered.
type Subscription struct {
	Events <-chan Event
	Done   <-chan struct{}

	events chan Event
	done   chan struct{}
	wake   chan struct{}

	mu        sync.Mutex
	pending   []Event
	closeOnce sync.Once
}

func newSubscription() *Subscription {
	s := &Subscription{
		events: make(chan Event),
		done:   make(chan struct{}),
		wake:   make(chan struct{}, 1),
	}
	s.Events = s.events
	s.Done = s.done
	go s.forward()
	return s
}

// Close stops delivery. Safe to call more than once.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Subscription) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Subscription) publish(e Event) {
	s.mu.Lock()
	if tu, ok := e.(TimeUpdate); ok && len(s.pending) > 0 {
		if last, ok := s.pending[len(s.pending)-1].(TimeUpdate); ok && last.Source == tu.Source {
			s.pending[len(s.pending)-1] = tu
			s.mu.Unlock()
			return
		}
	}
	s.pending = append(s.pending, e)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Subscription) next() (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return nil, false
	}
	e := s.pending[0]
	s.pending[0] = nil
	s.pending = s.pending[1:]
	return e, true
}

func (s *Subscription) forward() {
	for {
		e, ok := s.next()
		if !ok {
			select {
			case <-s.wake:
				continue
			case <-s.done:
				return
			}
		}
		select {
		case s.events <- e:
		case <-s.done:
			return
		}
	}
}

// hub fans events out to subscriptions.
type hub struct {
	mu   sync.Mutex
	subs []*Subscription
}

func (h *hub) subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	sub := newSubscription()
	h.subs = append(h.subs, sub)
	return sub
}

func (h *hub) publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	live := h.subs[:0]
	for _, sub := range h.subs {
		if sub.closed() {
			continue
		}
		sub.publish(e)
		live = append(live, sub)
	}
	clear(h.subs[len(live):])
	h.subs = live
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.subs {
		sub.Close()
	}
	h.subs = nil
}

// Package events turns the completed calls of one client instance into
// tally.ResponseEvent and tally.ErrorEvent values and hands them to the
// registered listeners.
package events

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// Relay is installed on a transport as a request/response interceptor pair.
// It is safe for concurrent use.
type Relay struct {
	mu        sync.RWMutex
	listeners map[tally.EventKind]map[tally.Subscription]tally.Listener
	nextID    atomic.Uint64

	pendingMu sync.Mutex
	pending   map[string]time.Time

	logger tally.Logger
	now    func() time.Time
}

// NewRelay creates a relay. logger may be nil.
func NewRelay(logger tally.Logger) *Relay {
	return &Relay{
		listeners: map[tally.EventKind]map[tally.Subscription]tally.Listener{
			tally.EventError:    {},
			tally.EventResponse: {},
		},
		pending: make(map[string]time.Time),
		logger:  logger,
		now:     time.Now,
	}
}

// On registers listener for kind.
func (r *Relay) On(kind tally.EventKind, listener tally.Listener) (tally.Subscription, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %q", tally.ErrUnknownEventKind, kind)
	}

	if listener == nil {
		return 0, tally.ErrNilListener
	}

	sub := tally.Subscription(r.nextID.Add(1))

	r.mu.Lock()
	r.listeners[kind][sub] = listener
	r.mu.Unlock()

	return sub, nil
}

// Off removes sub from kind and reports whether it was registered.
func (r *Relay) Off(kind tally.EventKind, sub tally.Subscription) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.listeners[kind]
	if !ok {
		return false
	}

	if _, ok := set[sub]; !ok {
		return false
	}

	delete(set, sub)

	return true
}

// OnResponse registers a typed listener for response events. A nil fn
// registers nothing and returns the zero Subscription.
func (r *Relay) OnResponse(fn func(tally.ResponseEvent)) tally.Subscription {
	if fn == nil {
		return 0
	}

	sub, _ := r.On(tally.EventResponse, func(event tally.Event) {
		if e, ok := event.(tally.ResponseEvent); ok {
			fn(e)
		}
	})

	return sub
}

// OnError registers a typed listener for error events. A nil fn registers
// nothing and returns the zero Subscription.
func (r *Relay) OnError(fn func(tally.ErrorEvent)) tally.Subscription {
	if fn == nil {
		return 0
	}

	sub, _ := r.On(tally.EventError, func(event tally.Event) {
		if e, ok := event.(tally.ErrorEvent); ok {
			fn(e)
		}
	})

	return sub
}

// ListenerCount returns the number of listeners registered for kind.
func (r *Relay) ListenerCount(kind tally.EventKind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.listeners[kind])
}

// Start records the dispatch time of req. It is a tally.RequestInterceptor.
func (r *Relay) Start(_ context.Context, req *tally.Request) error {
	r.pendingMu.Lock()
	r.pending[req.ID] = r.now()
	r.pendingMu.Unlock()

	return nil
}

// Observe consumes the timing record of req and publishes the outcome. Calls
// that failed before a response arrived publish nothing. It is a
// tally.ResponseInterceptor and never returns an error.
func (r *Relay) Observe(_ context.Context, req *tally.Request, resp *tally.Response) error {
	r.pendingMu.Lock()
	started, ok := r.pending[req.ID]
	delete(r.pending, req.ID)
	r.pendingMu.Unlock()

	if resp == nil || resp.Error != nil {
		return nil
	}

	var duration time.Duration
	if ok {
		duration = r.now().Sub(started)
	}

	event := tally.ResponseEvent{
		Status:   resp.StatusCode,
		URL:      resp.URL,
		Method:   req.Method,
		Duration: duration,
		OK:       resp.OK(),
	}

	r.Emit(event)

	if !event.OK {
		errEvent := tally.ErrorEvent{
			ResponseEvent: event,
			StatusText:    tally.StatusText(resp),
			Message:       tally.ParseErrorMessage(resp.Body),
			Body:          string(resp.Body),
			RequestID:     resp.RequestID(),
		}

		r.Emit(errEvent)
	}

	return nil
}

// Pending returns the number of calls dispatched but not yet observed.
func (r *Relay) Pending() int {
	r.pendingMu.Lock()
	defer r.pendingMu.Unlock()

	return len(r.pending)
}

// Emit delivers event to every listener of its kind. Listeners run
// synchronously on a snapshot, so they may call On or Off themselves.
func (r *Relay) Emit(event tally.Event) {
	r.mu.RLock()
	set := r.listeners[event.Kind()]
	snapshot := make([]tally.Listener, 0, len(set))

	for _, listener := range set {
		snapshot = append(snapshot, listener)
	}
	r.mu.RUnlock()

	for _, listener := range snapshot {
		r.invoke(listener, event)
	}
}

func (r *Relay) invoke(listener tally.Listener, event tally.Event) {
	defer func() {
		recovered := recover()
		if recovered != nil && r.logger != nil {
			r.logger.Debug("event listener panicked", map[string]interface{}{
				"event": string(event.Kind()),
				"panic": fmt.Sprint(recovered),
			})
		}
	}()

	listener(event)
}

// Package eventsink forwards the events of a tally.EventSource to external
// systems.
//
// Three sinks are provided:
//
//   - Metrics exports Prometheus counters and a latency histogram.
//   - NATSSink publishes every event as JSON on a NATS subject.
//   - LatencyRecorder keeps an HDR histogram of call durations in memory.
//
// Every sink has an Attach method that subscribes it to a source and returns a
// function that unsubscribes it again:
//
//	detach := eventsink.NewMetrics(prometheus.DefaultRegisterer, "tally").Attach(cli)
//	defer detach()
package eventsink

import "github.com/fivetwenty-io/tally-client/pkg/tally"

// Detach removes the subscriptions made by an Attach call.
type Detach func()

type subscription struct {
	kind tally.EventKind
	sub  tally.Subscription
}

func attach(src tally.EventSource, onResponse func(tally.ResponseEvent), onError func(tally.ErrorEvent)) Detach {
	var subs []subscription

	if onResponse != nil {
		subs = append(subs, subscription{tally.EventResponse, src.OnResponse(onResponse)})
	}

	if onError != nil {
		subs = append(subs, subscription{tally.EventError, src.OnError(onError)})
	}

	return func() {
		for _, s := range subs {
			src.Off(s.kind, s.sub)
		}
	}
}

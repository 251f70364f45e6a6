// Package tally provides types, interfaces, and helpers for working with the
// Tally business-management API (invoices, estimates, contacts, organizations).
//
// # Overview
//
// The tally package defines the client configuration, the transport contract,
// the request/response interceptor chain, the event types published after each
// call, and the resource client interfaces. A concrete implementation is
// provided by the tallyclient package, which wires configuration, transport,
// authentication, and the event relay. Most consumers should import tallyclient
// to construct a client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/tally-client/pkg/tally"
//	  "github.com/fivetwenty-io/tally-client/pkg/tallyclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := tallyclient.New("sk_live_...", &tally.Config{Timeout: 10 * time.Second})
//	  if err != nil { log.Fatal(err) }
//
//	  invoices, err := cli.Invoices().List(ctx, tally.NewListParams().WithPerPage(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = invoices
//	}
//
// # Events
//
// Every completed call publishes a ResponseEvent. Calls that end with a non-2xx
// status additionally publish an ErrorEvent carrying the status text and, when
// the body is a JSON object with a "message" or "error" string, a readable
// message. Listeners are invoked synchronously and in isolation: a panicking
// listener never affects other listeners or the caller.
//
//	sub := cli.OnError(func(ev tally.ErrorEvent) {
//	  log.Printf("%s %s -> %d %s", ev.Method, ev.URL, ev.Status, ev.Message)
//	})
//	defer cli.Off(tally.EventError, sub)
//
// # Errors
//
// Non-2xx responses are returned as *APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsRateLimited make it easy to branch on common cases.
// Timeouts and caller cancellations both wrap ErrRequestAborted.
//
// # Interceptors
//
// Client.Transport exposes the per-instance transport. Its InterceptorChain
// accepts additional request/response interceptors, and its Do/Get/Post
// methods reach endpoints not covered by the generated services.
package tally

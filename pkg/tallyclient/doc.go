// Package tallyclient provides the primary entry point for constructing a
// Tally API client that implements the tally.Client interface.
//
// Each call to New builds an isolated client: its own HTTP client, its own
// interceptor chain, and its own listeners. Nothing is shared between two
// clients, so several API keys can be used side by side in one process.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "time"
//
//	  "github.com/fivetwenty-io/tally-client/pkg/tally"
//	  "github.com/fivetwenty-io/tally-client/pkg/tallyclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := tallyclient.New("tk_live_...", &tally.Config{
//	    Timeout: 10 * time.Second,
//	    Headers: map[string]string{"X-Tenant": "acme"},
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  cli.OnError(func(e tally.ErrorEvent) {
//	    log.Printf("%s %s -> %d %s", e.Method, e.URL, e.Status, e.Message)
//	  })
//
//	  invoices, err := cli.Invoices().List(ctx, tally.NewListParams().WithPerPage(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = invoices
//	}
//
// # Escape hatch
//
// Client.Transport returns the per-instance transport. Callers can register
// extra interceptors on it or reach endpoints that have no generated service:
//
//	resp, err := cli.Transport().Get(ctx, "/reports/profit-and-loss", nil)
//
// # Helpers
//
// NewWithBaseURL is a convenience constructor for sandbox or self-hosted
// endpoints.
package tallyclient

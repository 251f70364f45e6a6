package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/tally-client/internal/constants"
	"github.com/fivetwenty-io/tally-client/internal/events"
	tallyhttp "github.com/fivetwenty-io/tally-client/internal/http"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// Client implements the tally.Client interface. Every Client owns its
// transport, interceptor chain and listeners.
type Client struct {
	transport *tallyhttp.Client
	relay     *events.Relay
	baseURL   string
	logger    tally.Logger

	// Resource clients
	invoices      tally.InvoicesClient
	estimates     tally.EstimatesClient
	contacts      tally.ContactsClient
	organizations tally.OrganizationsClient
}

// New creates a new Tally API client for apiKey.
func New(apiKey string, config *tally.Config) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, tally.ErrAPIKeyRequired
	}

	if config == nil {
		config = &tally.Config{}
	}

	baseURL, err := resolveBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	relay := events.NewRelay(config.Logger)
	transport := tallyhttp.NewClient(baseURL, createHTTPClientOptions(config)...)

	transport.Interceptors().AddRequestInterceptor(tally.ChainRequestInterceptors(
		tally.HeaderInterceptor(defaultHeaders(config)),
		tally.AuthenticationInterceptor(tally.StaticToken(apiKey)),
		relay.Start,
	))
	transport.Interceptors().AddResponseInterceptor(relay.Observe)

	if config.Logger != nil {
		transport.Interceptors().AddResponseInterceptor(newVersionChecker(config.Logger).Observe)
	}

	client := &Client{
		transport: transport,
		relay:     relay,
		baseURL:   baseURL,
		logger:    config.Logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

func resolveBaseURL(raw string) (string, error) {
	if raw == "" {
		return constants.DefaultBaseURL, nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", tally.ErrInvalidBaseURL, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", tally.ErrInvalidBaseURL, raw)
	}

	return strings.TrimRight(raw, "/"), nil
}

// defaultHeaders merges the SDK identification headers with the caller's
// extra headers. Caller headers win, except for Authorization which is always
// derived from the API key.
func defaultHeaders(config *tally.Config) map[string]string {
	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = tally.SDKName + "/" + tally.Version
	}

	headers := map[string]string{
		constants.HeaderSDK:        tally.SDKName,
		constants.HeaderSDKVersion: tally.Version,
		"User-Agent":               userAgent,
	}

	for key, value := range config.Headers {
		canonical := http.CanonicalHeaderKey(key)
		if canonical == "Authorization" {
			continue
		}

		headers[canonical] = value
	}

	return headers
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *tally.Config) []tallyhttp.Option {
	var httpOpts []tallyhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, tallyhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, tallyhttp.WithDebug(true))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, tallyhttp.WithHTTPClient(config.HTTPClient))
	}

	if config.Transport != nil {
		httpOpts = append(httpOpts, tallyhttp.WithRoundTripper(config.Transport))
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	httpOpts = append(httpOpts, tallyhttp.WithTimeout(timeout))

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, tallyhttp.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.RateLimit > 0 {
		httpOpts = append(httpOpts, tallyhttp.WithRateLimit(config.RateLimit, config.RateBurst))
	}

	if config.TracerProvider != nil {
		httpOpts = append(httpOpts, tallyhttp.WithTracerProvider(config.TracerProvider))
	}

	return httpOpts
}

func (c *Client) initializeResourceClients() {
	c.invoices = NewInvoicesClient(c.transport)
	c.estimates = NewEstimatesClient(c.transport)
	c.contacts = NewContactsClient(c.transport)
	c.organizations = NewOrganizationsClient(c.transport)
}

// Resource client accessors

// Invoices implements tally.Client.Invoices.
func (c *Client) Invoices() tally.InvoicesClient {
	return c.invoices
}

// Estimates implements tally.Client.Estimates.
func (c *Client) Estimates() tally.EstimatesClient {
	return c.estimates
}

// Contacts implements tally.Client.Contacts.
func (c *Client) Contacts() tally.ContactsClient {
	return c.contacts
}

// Organizations implements tally.Client.Organizations.
func (c *Client) Organizations() tally.OrganizationsClient {
	return c.organizations
}

// Transport implements tally.Client.Transport.
func (c *Client) Transport() tally.Transport {
	return c.transport
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Event subscription

// On implements tally.EventSource.On.
func (c *Client) On(kind tally.EventKind, listener tally.Listener) (tally.Subscription, error) {
	return c.relay.On(kind, listener)
}

// Off implements tally.EventSource.Off.
func (c *Client) Off(kind tally.EventKind, sub tally.Subscription) bool {
	return c.relay.Off(kind, sub)
}

// OnResponse implements tally.EventSource.OnResponse.
func (c *Client) OnResponse(fn func(tally.ResponseEvent)) tally.Subscription {
	return c.relay.OnResponse(fn)
}

// OnError implements tally.EventSource.OnError.
func (c *Client) OnError(fn func(tally.ErrorEvent)) tally.Subscription {
	return c.relay.OnError(fn)
}

// PendingCalls returns the number of calls in flight on this client.
func (c *Client) PendingCalls() int {
	return c.relay.Pending()
}

// Ping lists a single organization to verify the credentials.
func (c *Client) Ping(ctx context.Context) (*tally.Response, error) {
	resp, err := c.transport.Get(ctx, "/organizations", url.Values{"per_page": []string{"1"}})
	if err != nil {
		return resp, fmt.Errorf("pinging API: %w", err)
	}

	return resp, nil
}

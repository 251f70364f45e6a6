package tally

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/fivetwenty-io/tally-client/pkg/models"
)

// InvoicesClient provides access to invoice endpoints.
type InvoicesClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[*models.Invoice], error)
	Get(ctx context.Context, id string) (*models.Invoice, error)
	Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	Update(ctx context.Context, id string, invoice *models.Invoice) (*models.Invoice, error)
	Delete(ctx context.Context, id string) error
	Send(ctx context.Context, id string, request *models.SendInvoiceRequest) (*models.Invoice, error)
	Void(ctx context.Context, id string) (*models.Invoice, error)
}

// EstimatesClient provides access to estimate endpoints.
type EstimatesClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[*models.Estimate], error)
	Get(ctx context.Context, id string) (*models.Estimate, error)
	Create(ctx context.Context, estimate *models.Estimate) (*models.Estimate, error)
	Update(ctx context.Context, id string, estimate *models.Estimate) (*models.Estimate, error)
	Delete(ctx context.Context, id string) error
	// Convert turns an accepted estimate into a draft invoice.
	Convert(ctx context.Context, id string) (*models.Invoice, error)
}

// ContactsClient provides access to contact endpoints.
type ContactsClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[*models.Contact], error)
	Get(ctx context.Context, id string) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Update(ctx context.Context, id string, contact *models.Contact) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
}

// OrganizationsClient provides access to organization endpoints.
type OrganizationsClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[*models.Organization], error)
	Get(ctx context.Context, id string) (*models.Organization, error)
	Update(ctx context.Context, id string, organization *models.Organization) (*models.Organization, error)
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Invoices() InvoicesClient
	Estimates() EstimatesClient
	Contacts() ContactsClient
	Organizations() OrganizationsClient
}

// EventSource is implemented by anything that publishes call outcomes.
type EventSource interface {
	// On registers listener for kind. It fails for unknown kinds or a nil listener.
	On(kind EventKind, listener Listener) (Subscription, error)
	// Off removes a subscription. It reports whether the subscription existed.
	Off(kind EventKind, sub Subscription) bool
	OnResponse(fn func(ResponseEvent)) Subscription
	OnError(fn func(ErrorEvent)) Subscription
}

// Doer executes a single API call.
type Doer interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Transport is the per-client HTTP transport. It is exposed so callers can
// register extra interceptors or reach endpoints without a generated service.
type Transport interface {
	Doer

	Get(ctx context.Context, path string, query url.Values) (*Response, error)
	Post(ctx context.Context, path string, body interface{}) (*Response, error)
	Put(ctx context.Context, path string, body interface{}) (*Response, error)
	Patch(ctx context.Context, path string, body interface{}) (*Response, error)
	Delete(ctx context.Context, path string) (*Response, error)

	Interceptors() *InterceptorChain
	BaseURL() string
}

// Client is the Tally API client.
type Client interface {
	ResourceClients
	EventSource

	// Transport returns the underlying transport of this client instance.
	Transport() Transport
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a tally.Client.
//
// # Timeouts
//
// Every call derives a deadline of Timeout from the context passed by the
// caller. Whichever fires first wins; both surface as ErrRequestAborted. A
// zero Timeout selects the 30 second default and a negative one disables it.
//
// # Retries
//
// Calls are never retried unless RetryMax is set. When it is, 429, 5xx, and
// connection errors are retried with exponential backoff between RetryWaitMin
// and RetryWaitMax.
type Config struct {
	// BaseURL: API root, defaults to the production endpoint. A trailing slash
	// is trimmed.
	BaseURL string

	// Timeout: per-call deadline.
	Timeout time.Duration

	// Headers: extra static headers merged into every request. They never
	// override Authorization.
	Headers map[string]string

	// Transport: replaces the network round tripper, e.g. for proxies or mocks.
	Transport http.RoundTripper
	// HTTPClient: replaces the whole underlying *http.Client. Transport wins
	// over HTTPClient.Transport when both are set.
	HTTPClient *http.Client

	// Logger: optional structured logger used by the transport and the relay.
	Logger Logger
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// RetryMax: maximum number of retries. Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration

	// RateLimit: client-side requests per second. Zero means unlimited.
	RateLimit float64
	// RateBurst: burst size for RateLimit, at least 1.
	RateBurst int

	// TracerProvider: source of the per-call spans. Defaults to the global provider.
	TracerProvider trace.TracerProvider
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

const tracerName = "github.com/fivetwenty-io/tally-client"

// Client is the transport of one tally client instance. Nothing in it is
// shared with other instances.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	interceptors *tally.InterceptorChain
	logger       tally.Logger
	debug        bool
	timeout      time.Duration
	limiter      *rate.Limiter
	tracer       trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output and retry messages.
func WithLogger(logger tally.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithTimeout sets the per-call deadline. Zero or negative disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryConfig enables retries of 429, 5xx and connection errors.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client. The value is copied so
// later changes by the caller do not leak into this transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient == nil {
			return
		}

		clone := *httpClient
		c.httpClient.HTTPClient = &clone
	}
}

// WithRoundTripper replaces the network round tripper.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt == nil {
			return
		}

		clone := *c.httpClient.HTTPClient
		clone.Transport = rt
		c.httpClient.HTTPClient = &clone
	}
}

// WithRateLimit caps outgoing calls at rps per second. Zero disables the limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil

			return
		}

		if burst < 1 {
			burst = 1
		}

		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithTracerProvider sets the source of per-call spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewClient creates a transport rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 0
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   retryClient,
		interceptors: tally.NewInterceptorChain(),
		tracer:       otel.GetTracerProvider().Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(client)
	}

	// retryablehttp logs every attempt, so it only gets the logger when that
	// output is wanted.
	if client.logger != nil && (client.debug || retryClient.RetryMax > 0) {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// BaseURL returns the API root every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Interceptors returns the interceptor chain of this transport.
func (c *Client) Interceptors() *tally.InterceptorChain {
	return c.interceptors
}

// Do performs req. A completed call with a non-2xx status returns both the
// response and a *tally.APIError. Interceptors work on a copy of req with a
// fresh ID, so one request value may be sent concurrently.
func (c *Client) Do(ctx context.Context, req *tally.Request) (*tally.Response, error) {
	req = prepare(req)

	ctx, span := c.tracer.Start(ctx, "tally "+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("tally.path", req.Path),
			attribute.String("tally.request_id", req.ID),
		))
	defer span.End()

	err := c.interceptors.ExecuteRequestInterceptors(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		// Interceptors that already ran may hold state for this call.
		rejected := &tally.Response{URL: c.buildURL(req), Error: err}
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, req, rejected)

		return nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	fullURL := c.buildURL(req)

	resp, err := c.roundTrip(ctx, req, fullURL)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		failed := &tally.Response{URL: fullURL, Error: err}
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, req, failed)

		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	err = c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil {
		return resp, err
	}

	if !resp.OK() {
		span.SetStatus(codes.Error, resp.Status)

		return resp, tally.NewAPIError(resp)
	}

	return resp, nil
}

func prepare(req *tally.Request) *tally.Request {
	call := *req
	call.ID = uuid.NewString()
	call.Headers = req.Headers.Clone()

	if call.Headers == nil {
		call.Headers = make(http.Header)
	}

	if req.Metadata != nil {
		call.Metadata = maps.Clone(req.Metadata)
	}

	return &call
}

func (c *Client) roundTrip(ctx context.Context, req *tally.Request, fullURL string) (*tally.Response, error) {
	if c.limiter != nil {
		err := c.limiter.Wait(ctx)
		if err != nil {
			return nil, classify(ctx, err)
		}
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, values := range req.Headers {
		httpReq.Header[key] = append([]string(nil), values...)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"request_id": req.ID,
			"method":     req.Method,
			"url":        fullURL,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classify(ctx, err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, classify(ctx, err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"request_id":  req.ID,
			"status_code": httpResp.StatusCode,
			"duration":    time.Since(start).String(),
		})
	}

	return &tally.Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		URL:        fullURL,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

func (c *Client) buildURL(req *tally.Request) string {
	path := req.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	fullURL := c.baseURL + path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	return fullURL
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*tally.Response, error) {
	return c.Do(ctx, &tally.Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*tally.Response, error) {
	return c.Do(ctx, &tally.Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*tally.Response, error) {
	return c.Do(ctx, &tally.Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*tally.Response, error) {
	return c.Do(ctx, &tally.Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*tally.Response, error) {
	return c.Do(ctx, &tally.Request{Method: http.MethodDelete, Path: path})
}

func encodeBody(body interface{}) (io.Reader, error) {
	switch typed := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return bytes.NewReader(typed), nil
	case string:
		return strings.NewReader(typed), nil
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		return bytes.NewReader(data), nil
	}
}

// classify maps a failed round trip to ErrRequestAborted when the call's
// context ended, and to ErrTransport otherwise.
func classify(ctx context.Context, err error) error {
	ctxErr := ctx.Err()
	if ctxErr == nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		ctxErr = err
	}

	if ctxErr != nil {
		return fmt.Errorf("%w: %w", tally.ErrRequestAborted, ctxErr)
	}

	return fmt.Errorf("%w: %w", tally.ErrTransport, err)
}

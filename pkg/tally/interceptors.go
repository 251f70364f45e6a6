package tally

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/fivetwenty-io/tally-client/internal/constants"
)

// Request represents an HTTP request that can be intercepted.
type Request struct {
	// ID identifies one call. The transport assigns a fresh one to the copy
	// its interceptors see.
	ID      string
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
	// Body is JSON-encoded unless it is already a []byte.
	Body     interface{}
	Metadata map[string]interface{}
}

// Response represents an HTTP response that can be intercepted.
type Response struct {
	StatusCode int
	// Status is the status line text, e.g. "404 Not Found".
	Status  string
	URL     string
	Headers http.Header
	Body    []byte
	// Error is set when the call failed before a response arrived.
	Error error
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// RequestID returns the server-assigned request id, or "" when absent.
func (r *Response) RequestID() string {
	if r == nil {
		return ""
	}

	return r.Headers.Get(constants.HeaderRequestID)
}

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after a response is received, or with
// resp.Error set when the call failed.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain manages a chain of interceptors. It is safe for concurrent use.
type InterceptorChain struct {
	mu                   sync.RWMutex
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:  make([]RequestInterceptor, 0),
		responseInterceptors: make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// RequestInterceptorCount returns the number of registered request interceptors.
func (c *InterceptorChain) RequestInterceptorCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.requestInterceptors)
}

// ResponseInterceptorCount returns the number of registered response interceptors.
func (c *InterceptorChain) ResponseInterceptorCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.responseInterceptors)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	c.mu.RLock()
	interceptors := append([]RequestInterceptor(nil), c.requestInterceptors...)
	c.mu.RUnlock()

	for _, interceptor := range interceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	c.mu.RLock()
	interceptors := append([]ResponseInterceptor(nil), c.responseInterceptors...)
	c.mu.RUnlock()

	for _, interceptor := range interceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// Common Interceptors

// ChainRequestInterceptors folds several interceptors into one, run in order.
func ChainRequestInterceptors(interceptors ...RequestInterceptor) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		for _, interceptor := range interceptors {
			if interceptor == nil {
				continue
			}

			err := interceptor(ctx, req)
			if err != nil {
				return err
			}
		}

		return nil
	}
}

// AuthenticationInterceptor adds a bearer Authorization header. It always
// overwrites whatever the request carried.
func AuthenticationInterceptor(tokenProvider func(context.Context) (string, error)) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		token, err := tokenProvider(ctx)
		if err != nil {
			return fmt.Errorf("failed to get authentication token: %w", err)
		}

		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		req.Headers.Set("Authorization", "Bearer "+token)

		return nil
	}
}

// StaticToken returns a token provider for a fixed API key.
func StaticToken(token string) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		return token, nil
	}
}

// HeaderInterceptor adds custom headers to requests. Headers already present
// on the request are kept.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			if req.Headers.Get(key) != "" {
				continue
			}

			req.Headers.Set(key, value)
		}

		return nil
	}
}

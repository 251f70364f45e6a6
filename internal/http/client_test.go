package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	tallyhttp "github.com/fivetwenty-io/tally-client/internal/http"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func (l *MockLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	msgs := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		msgs = append(msgs, entry["msg"].(string))
	}

	return msgs
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/invoices", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-key", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"id": "inv-1", "number": "INV-001"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := tallyhttp.NewClient(server.URL + "/v1/")
		client.Interceptors().AddRequestInterceptor(tally.AuthenticationInterceptor(tally.StaticToken("test-key")))

		req := &tally.Request{
			Method: "GET",
			Path:   "/invoices",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Empty(t, req.ID)
		assert.Nil(t, req.Headers)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "inv-1", result["id"])
		assert.Equal(t, "INV-001", result["number"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/invoices", request.URL.Path)
			assert.Equal(t, "page=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := tallyhttp.NewClient(server.URL)

		req := &tally.Request{
			Method: "GET",
			Path:   "invoices",
			Query:  url.Values{"page": []string{"2"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Acme", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := tallyhttp.NewClient(server.URL)

		req := &tally.Request{
			Method: "POST",
			Path:   "/contacts",
			Body:   map[string]string{"name": "Acme"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("X-Request-Id", "req-42")
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"message":"Invoice not found"}`))
		}))
		defer server.Close()

		client := tallyhttp.NewClient(server.URL)

		req := &tally.Request{
			Method: "GET",
			Path:   "/invoices/invalid",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		apiErr := &tally.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, "Invoice not found", apiErr.Message)
		assert.Equal(t, "Not Found", apiErr.Status)
		assert.Equal(t, "req-42", apiErr.RequestID)
		assert.True(t, tally.IsNotFound(err))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := tallyhttp.NewClient(server.URL)

		req := &tally.Request{
			Method:  "GET",
			Path:    "/invoices",
			Headers: http.Header{"X-Custom-Header": []string{"custom-value"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := tallyhttp.NewClient(server.URL, tallyhttp.WithLogger(logger), tallyhttp.WithDebug(true))

		req := &tally.Request{
			Method: "GET",
			Path:   "/invoices",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		messages := logger.messages()
		assert.Contains(t, messages, "HTTP Request")
		assert.Contains(t, messages, "HTTP Response")
	})

	t.Run("logger without debug stays quiet", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := tallyhttp.NewClient(server.URL, tallyhttp.WithLogger(logger))

		_, err := client.Get(context.Background(), "/invoices", nil)
		require.NoError(t, err)
		assert.Empty(t, logger.messages())
	})

	t.Run("with tracer provider", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := tallyhttp.NewClient(server.URL, tallyhttp.WithTracerProvider(noop.NewTracerProvider()))

		resp, err := client.Get(context.Background(), "/invoices", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*tallyhttp.Client, context.Context) (*tally.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *tallyhttp.Client, ctx context.Context) (*tally.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *tallyhttp.Client, ctx context.Context) (*tally.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *tallyhttp.Client, ctx context.Context) (*tally.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *tallyhttp.Client, ctx context.Context) (*tally.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *tallyhttp.Client, ctx context.Context) (*tally.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := tallyhttp.NewClient(server.URL)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("does not retry by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := tallyhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := tallyhttp.NewClient(server.URL, tallyhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 2 {
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := tallyhttp.NewClient(server.URL, tallyhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(2), attempts.Load())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)

			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := tallyhttp.NewClient(server.URL, tallyhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load()) // Should not retry
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	t.Run("hanging transport is aborted", func(t *testing.T) {
		t.Parallel()

		var observed atomic.Bool

		hang := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			<-req.Context().Done()
			observed.Store(req.Context().Err() != nil)

			return nil, req.Context().Err()
		})

		client := tallyhttp.NewClient("https://api.example.test",
			tallyhttp.WithRoundTripper(hang),
			tallyhttp.WithTimeout(50*time.Millisecond))

		start := time.Now()
		_, err := client.Get(context.Background(), "/invoices", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, tally.ErrRequestAborted)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.True(t, tally.IsAborted(err))
		assert.True(t, observed.Load())
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("fast call is never aborted afterwards", func(t *testing.T) {
		t.Parallel()

		var seen context.Context

		fast := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			seen = req.Context()

			return &http.Response{
				StatusCode: http.StatusOK,
				Status:     "200 OK",
				Header:     http.Header{},
				Body:       http.NoBody,
				Request:    req,
			}, nil
		})

		client := tallyhttp.NewClient("https://api.example.test",
			tallyhttp.WithRoundTripper(fast),
			tallyhttp.WithTimeout(30*time.Millisecond))

		resp, err := client.Get(context.Background(), "/invoices", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		time.Sleep(60 * time.Millisecond)

		require.NotNil(t, seen)
		assert.NotErrorIs(t, seen.Err(), context.DeadlineExceeded)
	})

	t.Run("caller cancellation wins", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := tallyhttp.NewClient(server.URL, tallyhttp.WithTimeout(time.Minute))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Get(ctx, "/invoices", nil)
		require.ErrorIs(t, err, tally.ErrRequestAborted)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_TransportFailure(t *testing.T) {
	t.Parallel()

	broken := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	client := tallyhttp.NewClient("https://api.example.test", tallyhttp.WithRoundTripper(broken))

	var failed *tally.Response

	client.Interceptors().AddResponseInterceptor(func(_ context.Context, _ *tally.Request, resp *tally.Response) error {
		failed = resp

		return nil
	})

	_, err := client.Get(context.Background(), "/invoices", nil)
	require.ErrorIs(t, err, tally.ErrTransport)
	assert.False(t, tally.IsAborted(err))

	require.NotNil(t, failed)
	require.Error(t, failed.Error)
	assert.Equal(t, "https://api.example.test/invoices", failed.URL)
}

func TestClient_RequestInterceptorFailure(t *testing.T) {
	t.Parallel()

	var called atomic.Bool

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		called.Store(true)
	}))
	defer server.Close()

	client := tallyhttp.NewClient(server.URL)
	client.Interceptors().AddRequestInterceptor(tally.AuthenticationInterceptor(func(context.Context) (string, error) {
		return "", errors.New("vault sealed")
	}))

	var rejected *tally.Response

	client.Interceptors().AddResponseInterceptor(func(_ context.Context, _ *tally.Request, resp *tally.Response) error {
		rejected = resp

		return nil
	})

	_, err := client.Get(context.Background(), "/invoices", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault sealed")
	assert.False(t, called.Load())

	require.NotNil(t, rejected)
	require.ErrorContains(t, rejected.Error, "vault sealed")
	assert.Equal(t, server.URL+"/invoices", rejected.URL)
}

func TestClient_SharedRequestValue(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer test-key", request.Header.Get("Authorization"))
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := tallyhttp.NewClient(server.URL)
	client.Interceptors().AddRequestInterceptor(tally.AuthenticationInterceptor(tally.StaticToken("test-key")))

	var (
		mu  sync.Mutex
		ids = map[string]bool{}
	)

	client.Interceptors().AddResponseInterceptor(func(_ context.Context, req *tally.Request, _ *tally.Response) error {
		mu.Lock()
		defer mu.Unlock()

		ids[req.ID] = true

		return nil
	})

	shared := &tally.Request{
		Method:  http.MethodGet,
		Path:    "/invoices",
		Headers: http.Header{"X-Trace": []string{"shared"}},
	}

	const calls = 8

	var wg sync.WaitGroup

	for range calls {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := client.Do(context.Background(), shared)
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	assert.Len(t, ids, calls)
	assert.Empty(t, shared.ID)
	assert.Empty(t, shared.Headers.Get("Authorization"))
	assert.Equal(t, "shared", shared.Headers.Get("X-Trace"))
}

func TestClient_RateLimit(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		attempts.Add(1)
	}))
	defer server.Close()

	client := tallyhttp.NewClient(server.URL, tallyhttp.WithRateLimit(1000, 5))

	for range 5 {
		_, err := client.Get(context.Background(), "/invoices", nil)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(5), attempts.Load())
}

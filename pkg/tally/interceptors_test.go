package tally_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

var errBoom = errors.New("boom")

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := tally.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *tally.Request) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *tally.Request) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(ctx, &tally.Request{Method: http.MethodGet, Path: "/invoices"})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
	assert.Equal(t, 2, chain.RequestInterceptorCount())
	assert.Equal(t, 0, chain.ResponseInterceptorCount())
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	chain := tally.NewInterceptorChain()

	var seen []int

	chain.AddResponseInterceptor(func(ctx context.Context, req *tally.Request, resp *tally.Response) error {
		seen = append(seen, resp.StatusCode)

		return nil
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *tally.Request, resp *tally.Response) error {
		seen = append(seen, resp.StatusCode+1)

		return nil
	})

	err := chain.ExecuteResponseInterceptors(context.Background(), &tally.Request{}, &tally.Response{StatusCode: http.StatusOK})
	require.NoError(t, err)

	assert.Equal(t, []int{200, 201}, seen)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := tally.NewInterceptorChain()

	called := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *tally.Request) error {
		return errBoom
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *tally.Request) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &tally.Request{})
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "request interceptor failed")
	assert.False(t, called)

	chain.AddResponseInterceptor(func(ctx context.Context, req *tally.Request, resp *tally.Response) error {
		return errBoom
	})

	err = chain.ExecuteResponseInterceptors(context.Background(), &tally.Request{}, &tally.Response{})
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "response interceptor failed")
}

func TestChainRequestInterceptors(t *testing.T) {
	t.Parallel()

	var order []string

	chained := tally.ChainRequestInterceptors(
		func(ctx context.Context, req *tally.Request) error {
			order = append(order, "a")

			return nil
		},
		nil,
		func(ctx context.Context, req *tally.Request) error {
			order = append(order, "b")

			return errBoom
		},
		func(ctx context.Context, req *tally.Request) error {
			order = append(order, "c")

			return nil
		},
	)

	err := chained(context.Background(), &tally.Request{})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestAuthenticationInterceptor(t *testing.T) {
	t.Parallel()

	t.Run("overwrites an existing header", func(t *testing.T) {
		t.Parallel()

		req := &tally.Request{Headers: http.Header{"Authorization": []string{"Bearer other"}}}

		err := tally.AuthenticationInterceptor(tally.StaticToken("sk_live"))(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Bearer sk_live", req.Headers.Get("Authorization"))
	})

	t.Run("creates headers", func(t *testing.T) {
		t.Parallel()

		req := &tally.Request{}

		err := tally.AuthenticationInterceptor(tally.StaticToken("sk_test"))(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Bearer sk_test", req.Headers.Get("Authorization"))
	})

	t.Run("provider error", func(t *testing.T) {
		t.Parallel()

		provider := func(context.Context) (string, error) { return "", errBoom }

		err := tally.AuthenticationInterceptor(provider)(context.Background(), &tally.Request{})
		require.ErrorIs(t, err, errBoom)
	})
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := tally.HeaderInterceptor(map[string]string{
		"X-Tally-SDK": "tally-go",
		"X-Trace":     "default",
	})

	req := &tally.Request{Headers: http.Header{"X-Trace": []string{"per-call"}}}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "tally-go", req.Headers.Get("X-Tally-SDK"))
	assert.Equal(t, "per-call", req.Headers.Get("X-Trace"))
}

func TestResponseRequestID(t *testing.T) {
	t.Parallel()

	resp := &tally.Response{Headers: http.Header{}}
	resp.Headers.Set("X-Request-Id", "req_42")

	assert.Equal(t, "req_42", resp.RequestID())
	assert.Empty(t, (&tally.Response{}).RequestID())
	assert.Empty(t, (*tally.Response)(nil).RequestID())
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, true},
		{http.StatusCreated, true},
		{http.StatusNoContent, true},
		{299, true},
		{http.StatusMultipleChoices, false},
		{http.StatusNotFound, false},
		{http.StatusInternalServerError, false},
		{0, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, (&tally.Response{StatusCode: tt.status}).OK(), tt.status)
	}
}

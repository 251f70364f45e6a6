package tally_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

func TestParseErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "message field", body: `{"message":"Invoice not found"}`, want: "Invoice not found"},
		{name: "error field", body: `{"error":"invalid_api_key"}`, want: "invalid_api_key"},
		{name: "message wins over error", body: `{"message":"m","error":"e"}`, want: "m"},
		{name: "empty message falls back to error", body: `{"message":"","error":"e"}`, want: "e"},
		{name: "non string message", body: `{"message":{"text":"nested"}}`, want: ""},
		{name: "non string error", body: `{"error":42}`, want: ""},
		{name: "not json", body: `<html>Bad Gateway</html>`, want: ""},
		{name: "json array", body: `["message"]`, want: ""},
		{name: "empty", body: ``, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tally.ParseErrorMessage([]byte(tt.body)))
		})
	}
}

func TestNewAPIError(t *testing.T) {
	t.Parallel()

	resp := &tally.Response{
		StatusCode: http.StatusUnprocessableEntity,
		Status:     "422 Unprocessable Entity",
		Headers:    http.Header{"X-Request-Id": []string{"req_1"}},
		Body:       []byte(`{"message":"due_date must follow issue_date"}`),
	}

	apiErr := tally.NewAPIError(resp)

	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Unprocessable Entity", apiErr.Status)
	assert.Equal(t, "due_date must follow issue_date", apiErr.Message)
	assert.Equal(t, "req_1", apiErr.RequestID)
	assert.Equal(t, string(resp.Body), apiErr.Body)
	assert.Equal(t, "tally: 422 Unprocessable Entity: due_date must follow issue_date", apiErr.Error())

	apiErr.Message = ""
	assert.Equal(t, "tally: 422 Unprocessable Entity", apiErr.Error())
}

func TestStatusText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Not Found", tally.StatusText(&tally.Response{StatusCode: 404, Status: "404 Not Found"}))
	assert.Equal(t, "Teapot Overflow", tally.StatusText(&tally.Response{StatusCode: 418, Status: "Teapot Overflow"}))
	assert.Equal(t, "Bad Gateway", tally.StatusText(&tally.Response{StatusCode: 502}))
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	wrap := func(code int) error {
		return fmt.Errorf("getting invoice: %w", &tally.APIError{StatusCode: code})
	}

	assert.True(t, tally.IsNotFound(wrap(http.StatusNotFound)))
	assert.False(t, tally.IsNotFound(wrap(http.StatusBadRequest)))
	assert.True(t, tally.IsUnauthorized(wrap(http.StatusUnauthorized)))
	assert.True(t, tally.IsForbidden(wrap(http.StatusForbidden)))
	assert.True(t, tally.IsRateLimited(wrap(http.StatusTooManyRequests)))
	assert.False(t, tally.IsNotFound(errBoom))

	aborted := fmt.Errorf("%w: %w", tally.ErrRequestAborted, context.DeadlineExceeded)
	assert.True(t, tally.IsAborted(aborted))
	assert.True(t, errors.Is(aborted, context.DeadlineExceeded))
	assert.False(t, tally.IsAborted(wrap(http.StatusGatewayTimeout)))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := error(&tally.ValidationError{Operation: "CreateInvoice", Err: errBoom})

	assert.Equal(t, "tally: invalid CreateInvoice request: boom", err.Error())
	require.ErrorIs(t, err, errBoom)
}

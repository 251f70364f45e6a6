package tally

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrAPIKeyRequired    = errors.New("API key is required")
	ErrInvalidBaseURL    = errors.New("invalid base URL")
	ErrRequestAborted    = errors.New("request aborted")
	ErrTransport         = errors.New("transport failure")
	ErrUnknownEventKind  = errors.New("unknown event kind")
	ErrNilListener       = errors.New("listener is nil")
	ErrIDRequired        = errors.New("resource id is required")
	ErrNoMoreItems       = errors.New("no more items")
	ErrUnexpectedPayload = errors.New("unexpected response payload")
)

// APIError is returned for every completed call whose status is outside 2xx.
type APIError struct {
	StatusCode int    `json:"status"               yaml:"status"`
	Status     string `json:"status_text"          yaml:"status_text"`
	Message    string `json:"message,omitempty"    yaml:"message,omitempty"`
	Body       string `json:"body,omitempty"       yaml:"body,omitempty"`
	RequestID  string `json:"request_id,omitempty" yaml:"request_id,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("tally: %d %s: %s", e.StatusCode, e.Status, e.Message)
	}

	return fmt.Sprintf("tally: %d %s", e.StatusCode, e.Status)
}

// NewAPIError builds an APIError from a completed response.
func NewAPIError(resp *Response) *APIError {
	return &APIError{
		StatusCode: resp.StatusCode,
		Status:     StatusText(resp),
		Message:    ParseErrorMessage(resp.Body),
		Body:       string(resp.Body),
		RequestID:  resp.RequestID(),
	}
}

// ValidationError wraps a client-side schema validation failure. The request
// was not sent.
type ValidationError struct {
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("tally: invalid %s request: %v", e.Operation, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StatusText returns the reason phrase of a response, falling back to the
// standard text for its code.
func StatusText(resp *Response) string {
	if resp.Status != "" {
		prefix := fmt.Sprintf("%d ", resp.StatusCode)
		if len(resp.Status) > len(prefix) && resp.Status[:len(prefix)] == prefix {
			return resp.Status[len(prefix):]
		}

		return resp.Status
	}

	return http.StatusText(resp.StatusCode)
}

// ParseErrorMessage extracts a human readable message from a JSON error body.
// It reads the "message" field, then the "error" field, and only accepts
// strings. Anything else yields "".
func ParseErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var payload map[string]interface{}

	err := json.Unmarshal(body, &payload)
	if err != nil {
		return ""
	}

	if msg, ok := payload["message"].(string); ok && msg != "" {
		return msg
	}

	if msg, ok := payload["error"].(string); ok {
		return msg
	}

	return ""
}

func hasStatus(err error, code int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

// IsAborted reports whether the call was cut short by a timeout or a cancelled context.
func IsAborted(err error) bool {
	return errors.Is(err, ErrRequestAborted)
}

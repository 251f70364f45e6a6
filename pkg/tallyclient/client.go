package tallyclient

import (
	"fmt"

	"github.com/fivetwenty-io/tally-client/internal/client"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// New creates a new Tally API client. config may be nil.
func New(apiKey string, config *tally.Config) (tally.Client, error) {
	c, err := client.New(apiKey, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithBaseURL creates a client against baseURL with default settings.
func NewWithBaseURL(apiKey, baseURL string) (tally.Client, error) {
	return New(apiKey, &tally.Config{BaseURL: baseURL})
}

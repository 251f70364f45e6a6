package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, run 'tally configure' or set TALLY_API_KEY")
	ErrEmptyAPIKey        = errors.New("API key cannot be empty")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidHTTPMethod   = errors.New("invalid HTTP method")
	ErrInvalidBodyJSON     = errors.New("request body is not valid JSON")
	ErrRecipientRequired   = errors.New("at least one --to recipient is required")
)

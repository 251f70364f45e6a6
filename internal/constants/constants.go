package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Endpoints.
const (
	// DefaultBaseURL is the production Tally API root.
	DefaultBaseURL = "https://api.tallybooks.io/v1"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default per-call deadline.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits, used only when retries are enabled.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Request and response headers.
const (
	// HeaderSDK carries the SDK name.
	HeaderSDK = "X-Tally-SDK"

	// HeaderSDKVersion carries the SDK version.
	HeaderSDKVersion = "X-Tally-SDK-Version"

	// HeaderAPIVersion is reported by the server on every response.
	HeaderAPIVersion = "X-Api-Version"

	// HeaderRequestID is the server-assigned request id.
	HeaderRequestID = "X-Request-Id"
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 20

	// StandardPageSize is the page size used when fetching every page.
	StandardPageSize = 50
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey     string
	BaseURL    string
	TallyPath  string
	ConfigPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig(t *testing.T) *TestConfig {
	t.Helper()

	return &TestConfig{
		APIKey:     os.Getenv("TALLY_API_KEY"),
		BaseURL:    os.Getenv("TALLY_BASE_URL"),
		TallyPath:  getTallyPath(),
		ConfigPath: filepath.Join(t.TempDir(), "config.yml"),
		Verbose:    os.Getenv("TALLY_VERBOSE") == "true",
	}
}

func getTallyPath() string {
	if path := os.Getenv("TALLY_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../tally",
		"./tally",
		"../tally",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "tally"
}

// SkipIfMissingConfig skips the test unless an API key and binary are available
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("TALLY_API_KEY not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.TallyPath); err != nil {
		t.Skipf("tally binary not found at %s, skipping integration test", config.TallyPath)
	}
}

// CommandRunner runs the tally binary against the configured account
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

func (runner *CommandRunner) command(args ...string) *exec.Cmd {
	args = append([]string{"--config", runner.config.ConfigPath}, args...)

	// #nosec G204 -- the binary path comes from the test environment
	cmd := exec.Command(runner.config.TallyPath, args...)
	cmd.Env = append(os.Environ(), "TALLY_API_KEY="+runner.config.APIKey)

	if runner.config.BaseURL != "" {
		cmd.Env = append(cmd.Env, "TALLY_BASE_URL="+runner.config.BaseURL)
	}

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.TallyPath, strings.Join(args, " "))
	}

	return cmd
}

// Run executes a tally command and returns its output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := runner.command(args...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a tally command with JSON output and decodes the result
func (runner *CommandRunner) RunJSON(target interface{}, args ...string) {
	runner.t.Helper()

	stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
	require.NoError(runner.t, err, "tally %s failed: %s", strings.Join(args, " "), stderr)
	require.NoError(runner.t, json.Unmarshal([]byte(stdout), target), "invalid JSON output: %s", stdout)
}

// WriteDocument writes a JSON document for create commands and returns its path
func WriteDocument(t *testing.T, document interface{}) string {
	t.Helper()

	data, err := json.Marshal(document)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "document.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return prefix + "-" + time.Now().UTC().Format("20060102150405")
}

// CleanupResource attempts to delete a test resource
func (runner *CommandRunner) CleanupResource(resourceType, id string) {
	if id == "" {
		return
	}

	var args []string

	switch resourceType {
	case "contact":
		args = []string{"contacts", "delete", id}
	case "invoice":
		args = []string{"invoices", "delete", id}
	default:
		runner.t.Logf("Unknown resource type for cleanup: %s", resourceType)

		return
	}

	stdout, stderr, err := runner.Run(args...)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", resourceType, id, stdout, stderr)
	}
}

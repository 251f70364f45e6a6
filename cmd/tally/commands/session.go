package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/nats-io/nats.go"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/tally-client/internal/client"
	"github.com/fivetwenty-io/tally-client/internal/constants"
	"github.com/fivetwenty-io/tally-client/internal/logging"
	"github.com/fivetwenty-io/tally-client/pkg/eventsink"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// session is one configured client plus the event sinks the flags asked for.
type session struct {
	client *client.Client
	output string
	stdout io.Writer
	stderr io.Writer

	stats   *eventsink.LatencyRecorder
	conn    *nats.Conn
	detachs []eventsink.Detach
}

func openSession(cmd *cobra.Command, v *viper.Viper) (*session, error) {
	output := v.GetString(keyOutput)

	err := validateOutputFormat(output)
	if err != nil {
		return nil, err
	}

	apiKey := v.GetString(keyAPIKey)
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	level := defaultLogLevel
	if v.GetBool(keyDebug) {
		level = "debug"
	}

	logger := logging.New(cmd.ErrOrStderr(), level)

	config := &tally.Config{
		BaseURL:   v.GetString(keyBaseURL),
		Timeout:   v.GetDuration(keyTimeout),
		Logger:    logger,
		Debug:     v.GetBool(keyDebug),
		RetryMax:  v.GetInt(keyRetries),
		RateLimit: v.GetFloat64(keyRateLimit),
	}

	tallyClient, err := client.New(apiKey, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s := &session{
		client: tallyClient,
		output: output,
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
	}

	if v.GetBool(keyStats) {
		s.stats = eventsink.NewLatencyRecorder()
		s.detachs = append(s.detachs, s.stats.Attach(tallyClient))
	}

	if natsURL := v.GetString(keyNATSURL); natsURL != "" {
		natsConfig := &eventsink.NATSConfig{
			URL:           natsURL,
			SubjectPrefix: v.GetString(keyNATSSubject),
			Name:          "tally-cli",
		}

		conn, err := eventsink.ConnectNATS(natsConfig)
		if err != nil {
			s.Close()

			return nil, err
		}

		s.conn = conn
		sink := natsConfig.NewSink(conn, logger)
		s.detachs = append(s.detachs, sink.Attach(tallyClient))
	}

	return s, nil
}

// Close detaches the sinks, flushes NATS and prints the latency summary.
func (s *session) Close() {
	for _, detach := range s.detachs {
		detach()
	}

	s.detachs = nil

	if s.conn != nil {
		_ = s.conn.Flush()
		s.conn.Close()
		s.conn = nil
	}

	if s.stats != nil {
		_ = renderStats(s.stderr, s.stats.Summary())
	}
}

func (s *session) render(data interface{}, fill tableFiller) error {
	return render(s.stdout, s.output, data, fill)
}

func renderStats(w io.Writer, summary eventsink.LatencySummary) error {
	table := tablewriter.NewWriter(w)
	table.Header("Requests", "Errors", "Min", "Mean", "P50", "P90", "P99", "Max")

	err := table.Append(
		fmt.Sprint(summary.Count),
		fmt.Sprint(summary.Errors),
		summary.Min.String(),
		summary.Mean.String(),
		summary.P50.String(),
		summary.P90.String(),
		summary.P99.String(),
		summary.Max.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to append stats row: %w", err)
	}

	return table.Render()
}

// withSession runs fn against a fresh session bound to the command context.
func withSession(cmd *cobra.Command, v *viper.Viper, fn func(ctx context.Context, s *session) error) error {
	s, err := openSession(cmd, v)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return fn(ctx, s)
}

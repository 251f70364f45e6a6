package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/tally-client/internal/constants"
)

// Configuration keys shared by flags, the config file and TALLY_* variables.
const (
	keyConfig       = "config"
	keyAPIKey       = "api_key"
	keyBaseURL      = "base_url"
	keyOutput       = "output"
	keyDebug        = "debug"
	keyTimeout      = "timeout"
	keyRetries      = "retries"
	keyRateLimit    = "rate_limit"
	keyStats        = "stats"
	keyNATSURL      = "nats_url"
	keyNATSSubject  = "nats_subject"
	configDirName   = ".tally"
	configFileName  = "config.yml"
	defaultLogLevel = "warn"
)

// NewRootCommand builds the tally command tree. Every tree owns its own viper
// instance so commands can be executed side by side in tests.
func NewRootCommand(version, commit, date string) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "tally",
		Short: "Tally accounting API CLI",
		Long: `A command-line interface for the Tally accounting API.

It covers invoices, estimates, contacts and organizations, and can issue raw
requests against any endpoint.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.tally/config.yml)")
	flags.String("api-key", "", "API key (env TALLY_API_KEY)")
	flags.String("base-url", "", "API root URL (default "+constants.DefaultBaseURL+")")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.Bool("debug", false, "log every request and response to stderr")
	flags.Duration("timeout", constants.DefaultHTTPTimeout, "per-request timeout")
	flags.Int("retries", 0, "retry 429, 5xx and connection failures this many times")
	flags.Float64("rate-limit", 0, "client-side requests per second, 0 for unlimited")
	flags.Bool("stats", false, "print a latency summary to stderr when done")
	flags.String("nats-url", "", "publish request events to this NATS server")
	flags.String("nats-subject", "", "subject prefix for NATS events")

	for key, flag := range map[string]string{
		keyConfig:      "config",
		keyAPIKey:      "api-key",
		keyBaseURL:     "base-url",
		keyOutput:      "output",
		keyDebug:       "debug",
		keyTimeout:     "timeout",
		keyRetries:     "retries",
		keyRateLimit:   "rate-limit",
		keyStats:       "stats",
		keyNATSURL:     "nats-url",
		keyNATSSubject: "nats-subject",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(NewVersionCommand(v, version, commit, date))
	rootCmd.AddCommand(NewConfigureCommand(v))
	rootCmd.AddCommand(NewPingCommand(v))
	rootCmd.AddCommand(NewInvoicesCommand(v))
	rootCmd.AddCommand(NewEstimatesCommand(v))
	rootCmd.AddCommand(NewContactsCommand(v))
	rootCmd.AddCommand(NewOrganizationsCommand(v))
	rootCmd.AddCommand(NewRequestCommand(v))

	return rootCmd
}

func initConfig(v *viper.Viper) error {
	cfgFile := v.GetString(keyConfig)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		configDir, err := defaultConfigDir()
		if err != nil {
			return err
		}

		v.AddConfigPath(configDir)
		v.SetConfigType("yml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TALLY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName), nil
}

// configFilePath is where configure writes: the file in use, the --config
// flag, or ~/.tally/config.yml.
func configFilePath(v *viper.Viper) (string, error) {
	if used := v.ConfigFileUsed(); used != "" {
		return used, nil
	}

	if cfgFile := v.GetString(keyConfig); cfgFile != "" {
		return cfgFile, nil
	}

	configDir, err := defaultConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, configFileName), nil
}

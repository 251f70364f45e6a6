package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/tally-client/internal/constants"
)

// FileConfig is the on-disk shape of ~/.tally/config.yml.
type FileConfig struct {
	APIKey  string `json:"api_key"            yaml:"api_key"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Output  string `json:"output,omitempty"   yaml:"output,omitempty"`
}

// NewConfigureCommand creates the configure command.
func NewConfigureCommand(v *viper.Viper) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store the API key and defaults",
		Long: `Prompt for an API key and save it, together with the current --base-url
and --output values, to the config file. Use --show to print the active
configuration instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if show {
				return showConfig(cmd, v)
			}

			apiKey := v.GetString(keyAPIKey)
			if !cmd.Flags().Changed("api-key") {
				secret, err := readSecret(cmd, "API key: ")
				if err != nil {
					return err
				}

				apiKey = secret
			}

			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			path, err := configFilePath(v)
			if err != nil {
				return err
			}

			config := FileConfig{
				APIKey:  apiKey,
				BaseURL: v.GetString(keyBaseURL),
				Output:  v.GetString(keyOutput),
			}

			err = writeConfigFile(path, &config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "print the active configuration")

	return cmd
}

func showConfig(cmd *cobra.Command, v *viper.Viper) error {
	baseURL := v.GetString(keyBaseURL)
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	apiKey := constants.NotAvailable
	if v.GetString(keyAPIKey) != "" {
		apiKey = constants.MaskedSecret
	}

	config := FileConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Output:  v.GetString(keyOutput),
	}

	return render(cmd.OutOrStdout(), v.GetString(keyOutput), config, func(table *tablewriter.Table) error {
		table.Header("Setting", "Value")
		_ = table.Append("Config File", orNA(v.ConfigFileUsed()))
		_ = table.Append("API Key", config.APIKey)
		_ = table.Append("Base URL", config.BaseURL)
		_ = table.Append("Output", config.Output)

		return nil
	})
}

// readSecret prompts on stderr. Terminal input is not echoed; piped input is
// read up to the first newline.
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), prompt)

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))

		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func writeConfigFile(path string, config *FileConfig) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

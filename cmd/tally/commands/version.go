package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/tally-client/internal/constants"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// VersionInfo is printed by the version command.
type VersionInfo struct {
	Version         string `json:"version"           yaml:"version"`
	Commit          string `json:"commit"            yaml:"commit"`
	Built           string `json:"built"             yaml:"built"`
	SDKVersion      string `json:"sdk_version"       yaml:"sdk_version"`
	APIVersion      string `json:"api_version"       yaml:"api_version"`
	APIVersionRange string `json:"api_version_range" yaml:"api_version_range"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(v *viper.Viper, version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display the CLI build and the Tally API versions it supports",
		RunE: func(cmd *cobra.Command, args []string) error {
			versionInfo := VersionInfo{
				Version:         version,
				Commit:          commit,
				Built:           date,
				SDKVersion:      tally.Version,
				APIVersion:      tally.APIVersion,
				APIVersionRange: tally.APIVersionRange,
			}

			return render(cmd.OutOrStdout(), v.GetString(keyOutput), versionInfo, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")
				_ = table.Append("Version", version)
				_ = table.Append("Commit", commit)
				_ = table.Append("Built", date)
				_ = table.Append("SDK", tally.Version)
				_ = table.Append("API Version", tally.APIVersion)
				_ = table.Append("Supported APIs", tally.APIVersionRange)

				return nil
			})
		},
	}
}

// PingResult is printed by the ping command.
type PingResult struct {
	BaseURL       string                    `json:"base_url"       yaml:"base_url"`
	Status        int                       `json:"status"         yaml:"status"`
	RequestID     string                    `json:"request_id"     yaml:"request_id"`
	Compatibility tally.CompatibilityResult `json:"compatibility"  yaml:"compatibility"`
}

// NewPingCommand creates a command that checks credentials and the server
// version.
func NewPingCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the API key and server compatibility",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				resp, err := s.client.Ping(ctx)
				if err != nil {
					return err
				}

				result := PingResult{
					BaseURL:       s.client.BaseURL(),
					Status:        resp.StatusCode,
					RequestID:     resp.RequestID(),
					Compatibility: tally.CheckCompatibility(resp.Headers.Get(constants.HeaderAPIVersion)),
				}

				return s.render(result, func(table *tablewriter.Table) error {
					table.Header("Property", "Value")
					_ = table.Append("API", result.BaseURL)
					_ = table.Append("Status", fmt.Sprint(result.Status))
					_ = table.Append("Request ID", orNA(result.RequestID))
					_ = table.Append("Server Version", orNA(result.Compatibility.ServerVersion))
					_ = table.Append("Compatibility", string(result.Compatibility.Status))
					_ = table.Append("Details", result.Compatibility.Message)

					return nil
				})
			})
		},
	}
}

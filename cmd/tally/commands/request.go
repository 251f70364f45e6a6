package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/tally-client/internal/constants"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

var requestMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// NewRequestCommand creates a command that sends an arbitrary API request.
func NewRequestCommand(v *viper.Viper) *cobra.Command {
	var (
		data    string
		query   []string
		headers []string
	)

	cmd := &cobra.Command{
		Use:   "request <method> <path>",
		Short: "Send a raw API request",
		Long: `Send a request to any endpoint and print the response body.

The path is relative to the base URL, for example:

  tally request GET /invoices --query status=draft
  tally request POST /contacts --data '{"name":"Acme"}'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRawRequest(args[0], args[1], data, query, headers)
			if err != nil {
				return err
			}

			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				resp, err := s.client.Transport().Do(ctx, req)
				if err != nil {
					return err
				}

				return writeBody(s, resp.Body)
			})
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")
	cmd.Flags().StringSliceVarP(&query, "query", "q", nil, "query parameter as key=value, repeatable")
	cmd.Flags().StringSliceVarP(&headers, "header", "H", nil, "header as 'Name: value', repeatable")

	return cmd
}

func buildRawRequest(method, path, data string, query, headers []string) (*tally.Request, error) {
	method = strings.ToUpper(method)
	if !requestMethods[method] {
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidHTTPMethod, method)
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req := &tally.Request{
		Method:  method,
		Path:    path,
		Query:   url.Values{},
		Headers: http.Header{},
	}

	for _, pair := range query {
		key, value, _ := strings.Cut(pair, "=")
		req.Query.Add(key, value)
	}

	for _, header := range headers {
		name, value, ok := strings.Cut(header, ":")
		if !ok {
			continue
		}

		req.Headers.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	if data != "" {
		if !json.Valid([]byte(data)) {
			return nil, constants.ErrInvalidBodyJSON
		}

		req.Body = []byte(data)
	}

	return req, nil
}

// writeBody prints a response body. JSON is indented, or converted when yaml
// output is selected. Anything else is copied as is.
func writeBody(s *session, body []byte) error {
	if len(body) == 0 {
		return nil
	}

	if s.output == constants.FormatYAML {
		var generic interface{}
		if json.Unmarshal(body, &generic) == nil {
			return renderYAML(s.stdout, generic)
		}
	}

	var indented bytes.Buffer
	if json.Indent(&indented, body, "", "  ") == nil {
		indented.WriteByte('\n')
		_, err := indented.WriteTo(s.stdout)

		return err
	}

	_, err := s.stdout.Write(body)

	return err
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator"
	"github.com/spf13/cobra"

	"github.com/juancwu/quiz-cli/config"
	"github.com/juancwu/quiz-cli/shared/env"
	"github.com/juancwu/quiz-cli/text"
	"github.com/juancwu/quiz-cli/util"
)

// endpointsFlags holds the flags of the endpoints command.
type endpointsFlags struct {
	BaseURL string
	Format  string `validate:"oneof=text json"`
}

// endpointEntry is a single line of the json output.
type endpointEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// newEndpointsCmd creates the endpoints command and all its subcommands.
func newEndpointsCmd(lookup env.LookupFunc) *cobra.Command {
	flags := new(endpointsFlags)
	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "Print the resolved API endpoints.",
		Long:  "Print the API endpoints derived from API_URL. Use --base-url to resolve against another base for a single run.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := resolveEndpoints(cmd, lookup, flags)
			if err != nil {
				return err
			}
			return writeEndpoints(cmd.OutOrStdout(), e, flags.Format)
		},
	}
	cmd.PersistentFlags().StringVar(&flags.BaseURL, "base-url", "", "Base URL to use instead of API_URL.")
	cmd.PersistentFlags().StringVar(&flags.Format, "format", "text", "Output format (text, json).")
	cmd.AddCommand(newEndpointsGetCmd(lookup, flags))
	return cmd
}

// newEndpointsGetCmd creates a command that prints a single endpoint.
func newEndpointsGetCmd(lookup env.LookupFunc, flags *endpointsFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "get <name>",
		Short:   "Print a single API endpoint.",
		Example: "quiz endpoints get AUTH.LOGIN",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := resolveEndpoints(cmd, lookup, flags)
			if err != nil {
				return err
			}
			url, ok := e.Lookup(args[0])
			if !ok {
				return ErrUnknownEndpoint{Name: args[0]}
			}
			if flags.Format == "json" {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(endpointEntry{Name: args[0], URL: url})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}
	return cmd
}

// resolveEndpoints loads the settings and resolves the table, logging to the command's stderr.
func resolveEndpoints(cmd *cobra.Command, lookup env.LookupFunc, flags *endpointsFlags) (config.Endpoints, error) {
	validate := validator.New()
	if err := validate.Struct(flags); err != nil {
		return config.Endpoints{}, fmt.Errorf("invalid --format %q: %w", flags.Format, err)
	}

	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return config.Endpoints{}, fmt.Errorf("failed to get env-file flag: %w", err)
	}
	values, err := env.Load(lookup, envFile)
	if err != nil {
		return config.Endpoints{}, err
	}

	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return config.Endpoints{}, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	if level == "" {
		level = values.LogLevel
	}
	logger := util.NewLogger(cmd.ErrOrStderr(), level)

	baseURL := values.APIURL
	if cmd.Flags().Changed("base-url") {
		logger.Debug("Using base url from flag", "cmd", cmd.CommandPath())
		baseURL = flags.BaseURL
	}

	return config.Resolve(baseURL, logger), nil
}

// writeEndpoints prints the table in declared order.
func writeEndpoints(w io.Writer, e config.Endpoints, format string) error {
	table := e.Table()
	if format == "json" {
		entries := make([]endpointEntry, 0, len(table))
		for _, name := range config.Names() {
			entries = append(entries, endpointEntry{Name: string(name), URL: table[name]})
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	colour := ""
	if e.Relative() {
		// relative entries are unlikely to be what the caller wants
		colour = text.YELLOW
	}
	for _, name := range config.Names() {
		if _, err := fmt.Fprintf(w, "%-14s %s\n", name, text.Foreground(colour, table[name])); err != nil {
			return err
		}
	}
	return nil
}

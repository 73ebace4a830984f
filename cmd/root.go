package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/juancwu/quiz-cli/shared/env"
)

// Execute initializes all commands and will run the cli.
// Any additional commands should be added here.
func Execute() error {
	return newRootCmd(os.LookupEnv).ExecuteContext(context.Background())
}

// newRootCmd builds the command tree. lookup is where the environment is read from.
func newRootCmd(lookup env.LookupFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Version:       os.Getenv("VERSION"),
		Use:           "quiz",
		Long:          "Quiz is a CLI that resolves the API endpoints used by the quiz application.",
		Short:         "Resolve the quiz API endpoints.",
		Example:       "quiz endpoints --base-url http://localhost:3001",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().String("env-file", env.DEFAULT_ENV_FILE, "Dotenv file to read settings from.")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error). Overrides LOG_LEVEL.")

	rootCmd.AddCommand(newEndpointsCmd(lookup))

	return rootCmd
}

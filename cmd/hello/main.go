// Hello sends a single greeting to a Gemini model and prints the reply.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	opts    options
)

var rootCmd = &cobra.Command{
	Use:   "hello",
	Short: "Send \"Hello, Gemini!\" to Gemini and print the reply",
	Long: `hello reads a Gemini API key from the environment, sends one fixed prompt
to a fixed model and prints the completion text on stdout.

  GEMINI_API_KEY=... hello                     Use the default key variable
  hello --env-file ./secrets.env               Load variables from a file first
  hello --config ./config.yaml                 Use an explicit config file`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), opts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "path to config.yaml (default: search ./config, ., /etc/gemini-hello/)")
	rootCmd.Flags().StringVar(&opts.envFile, "env-file", "", "dotenv file to load before reading the environment (default: .env if present)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

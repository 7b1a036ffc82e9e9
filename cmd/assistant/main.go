package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ilomad/portfolio-assistant/internal/cli"
	"github.com/ilomad/portfolio-assistant/internal/cli/client"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "assistant",
		Short: "Portfolio assistant CLI",
		Long: `Portfolio assistant CLI for talking to the chat server.

Environment variables:
  ASSISTANT_API_URL   API base URL (default: http://localhost:8080)`,
		Version: version,
	}

	rootCmd.PersistentFlags().Bool("output", false, "Output as JSON")
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides env)")
	cli.AddHelpJSONFlag(rootCmd)

	rootCmd.AddCommand(client.AskCmd())
	rootCmd.AddCommand(client.HealthCmd())

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

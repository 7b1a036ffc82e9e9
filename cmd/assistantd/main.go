package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ilomad/portfolio-assistant/internal/cli"
	"github.com/ilomad/portfolio-assistant/internal/cli/admin"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "assistantd",
		Short: "Portfolio assistant daemon",
		Long:  "Portfolio assistant daemon for running the chat API server",
	}

	cli.AddHelpJSONFlag(rootCmd)
	rootCmd.AddCommand(admin.ServeCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

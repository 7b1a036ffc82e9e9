package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// HealthResponse represents the health API response.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthCmd creates the health command.
func HealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the assistant server is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				return err
			}

			body, err := api.Get("/health")
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}

			var resp HealthResponse
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			fmt.Println(resp.Status)
			return nil
		},
	}
}

package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// ChatRequest represents the chat API request.
type ChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
}

// ChatResponse represents the chat API response.
type ChatResponse struct {
	Response string `json:"response"`
}

// AskCmd creates the ask command.
func AskCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the portfolio assistant a question",
		Long:  "Sends a question to the assistant and prints its answer.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				return err
			}
			return runAsk(api, args[0], language, outputJSON)
		},
	}

	cmd.Flags().StringVarP(&language, "lang", "l", "", "Reply language (fr, en or mg; detected when omitted)")

	return cmd
}

func runAsk(api *APIClient, question, language string, outputJSON bool) error {
	req := ChatRequest{
		Message:  question,
		Language: language,
	}

	body, err := api.Post("/chat", req)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(chatResp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Println(chatResp.Response)
	return nil
}

package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"portfolio-ai/backend/internal/llm"
	"portfolio-ai/backend/internal/model"
	"portfolio-ai/backend/internal/responder"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <text>",
	Short: "show the category a message is routed to",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "category: %s\n", responder.Classify(text))
		if matches := responder.Matches(text); len(matches) > 1 {
			fmt.Fprintf(out, "also matched: %v\n", matches[1:])
		}
		return nil
	},
}

var replyModel string

var replyCmd = &cobra.Command{
	Use:   "reply <text>",
	Short: "print the reply the local engine would give",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := llm.NewLocalProvider(responder.New(nil), replyModel, 0)
		reply, err := provider.Chat(cmd.Context(), &llm.ChatRequest{
			Messages: []model.ChatMessage{{Role: model.RoleUser, Content: strings.Join(args, " ")}},
		})
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reply)
	},
}

func init() {
	replyCmd.Flags().StringVar(&replyModel, "model", "mock-gpt-4", "model name reported in the reply")
}

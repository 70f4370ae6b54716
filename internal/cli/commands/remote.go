package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"portfolio-ai/backend/internal/api"
	"portfolio-ai/backend/internal/service"
)

var (
	visitorID  string
	sessionID  string
	outputFile string
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

var sendCmd = &cobra.Command{
	Use:   "send <text>",
	Short: "send a chat message to a running server",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := json.Marshal(service.SendMessageRequest{Content: strings.Join(args, " ")})
		if err != nil {
			return err
		}
		resp, err := call(cmd, http.MethodPost, "/api/v1/chat/messages", bytes.NewReader(body))
		if err != nil {
			return err
		}

		var result service.SendMessageResult
		if err := json.Unmarshal(resp, &result); err != nil {
			return fmt.Errorf("failed to decode reply: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Reply.Content)
		if result.Fallback {
			fmt.Fprintln(cmd.ErrOrStderr(), result.Notice)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "download the conversation as plain text",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := call(cmd, http.MethodGet, "/api/v1/chat/export", nil)
		if err != nil {
			return err
		}
		if outputFile == "" {
			_, err = cmd.OutOrStdout().Write(resp)
			return err
		}
		return os.WriteFile(outputFile, resp, 0o600)
	},
}

func init() {
	for _, c := range []*cobra.Command{sendCmd, exportCmd} {
		c.Flags().StringVar(&visitorID, "visitor", os.Getenv("PORTFOLIO_VISITOR_ID"), "visitor id sent as "+api.VisitorIDHeader)
		c.Flags().StringVar(&sessionID, "session", os.Getenv("PORTFOLIO_SESSION_ID"), "session id sent as "+api.SessionIDHeader)
	}
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write to this file instead of stdout")
}

// call performs one request and returns the body of a 2xx response. The ids
// the server assigned are printed to stderr when none were given, so the
// next invocation can continue the same conversation.
func call(cmd *cobra.Command, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(cmd.Context(), method, strings.TrimRight(serverURL, "/")+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if visitorID != "" {
		req.Header.Set(api.VisitorIDHeader, visitorID)
	}
	if sessionID != "" {
		req.Header.Set(api.SessionIDHeader, sessionID)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if visitorID == "" || sessionID == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "export PORTFOLIO_VISITOR_ID=%s PORTFOLIO_SESSION_ID=%s\n",
			resp.Header.Get(api.VisitorIDHeader), resp.Header.Get(api.SessionIDHeader))
	}

	if resp.StatusCode >= 300 {
		var apiErr api.ErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%s (HTTP %d)", apiErr.Error, resp.StatusCode)
		}
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return data, nil
}

// Package commands implements portfolioctl, a small CLI for trying the reply
// engine offline and talking to a running server.
package commands

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var serverURL string

var rootCmd = &cobra.Command{
	Use:     "portfolioctl",
	Short:   "Portfolio assistant CLI",
	Version: version,
	Long: `A command-line tool for the portfolio assistant. Classify and reply work
offline against the built-in keyword engine; send and export talk to a
running server.`,
	Example: `  # See which category a message falls into
  $ portfolioctl classify "mobil uyumlu site fiyatı"

  # Chat with a running server as a guest
  $ portfolioctl send -s http://localhost:8000 "merhaba"

  # Save the conversation
  $ portfolioctl export -o sohbet.txt`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "http://localhost:8000", "server base URL")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(replyCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(exportCmd)
}

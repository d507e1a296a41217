// Package cli wires the cobra command tree for the tutorwise binary.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driving"
	"github.com/tutorwise/tutorwise-cli/internal/logger"
)

// version is injected at build time.
var version = "dev"

// Services used by the commands. main wires the real implementations
// through SetServices before Execute.
var (
	accountService driving.AccountService
	spaceService   driving.SpaceService
	contentService driving.ContentService
	chatService    driving.ChatService
	watchService   driving.WatchService
)

// Services bundles everything the command tree needs.
type Services struct {
	Account driving.AccountService
	Space   driving.SpaceService
	Content driving.ContentService
	Chat    driving.ChatService
	Watch   driving.WatchService
}

// SetServices installs the service implementations for all commands.
func SetServices(s Services) {
	accountService = s.Account
	spaceService = s.Space
	contentService = s.Content
	chatService = s.Chat
	watchService = s.Watch
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tutorwise",
	Short: "Chat with your documents in learning spaces",
	Long: `Tutorwise is a command-line client for the Tutorwise tutoring backend.

Create learning spaces, upload documents into them, and ask questions
answered from the uploaded material with cited sources.

Examples:
  # Create an account and log in
  tutorwise register --email you@example.com --name "Your Name"

  # Create a space and upload a document
  tutorwise space create "Biology 101"
  tutorwise content upload <space-id> ./notes.pdf

  # Ask a question
  tutorwise chat send <space-id> "What is osmosis?"`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// requireAccount guards commands that cannot run without the account
// service wired in.
func requireAccount() error {
	if accountService == nil {
		return errors.New("account service not configured")
	}
	return nil
}

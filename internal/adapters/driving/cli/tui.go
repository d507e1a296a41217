package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tutorwise/tutorwise-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [space-id]",
	Short: "Launch an interactive chat session",
	Long: `Launch an interactive terminal chat session against a space.

The conversation continues from the space's stored transcript and is
persisted as you chat, so a later session picks up where you stopped.

Controls:
  Enter    - Send message
  ↑/↓      - Scroll the conversation
  Esc      - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}
	if accountService != nil && !accountService.IsAuthenticated() {
		return errors.New("not logged in: run 'tutorwise login' first")
	}

	// Stack traces beat a silently garbled terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	spaceID := args[0]

	// Resolve the title for the header; the session works without it.
	title := ""
	if spaceService != nil {
		if space, err := spaceService.Get(context.Background(), spaceID); err == nil {
			title = space.Title
		}
	}

	app, err := tui.NewApp(chatService, spaceID, title, nil)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	model, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// A session rejected mid-chat ends the TUI with the cause.
	if final, ok := model.(*tui.App); ok && final.Err() != nil {
		return final.Err()
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with a space's documents",
	Long: `Ask questions answered from a space's uploaded documents.

Each answer cites the document passages it was grounded on. The
conversation history is kept per space and sent with every question,
so follow-up questions work.

Examples:
  tutorwise chat send <space-id> "What is osmosis?"
  tutorwise chat history <space-id>
  tutorwise chat clear <space-id>

For an interactive session, use: tutorwise tui <space-id>`,
}

var chatSendCmd = &cobra.Command{
	Use:   "send [space-id] [message]",
	Short: "Ask one question",
	Args:  cobra.ExactArgs(2),
	RunE:  runChatSend,
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history [space-id]",
	Short: "Show the space's conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runChatHistory,
}

var chatClearCmd = &cobra.Command{
	Use:   "clear [space-id]",
	Short: "Forget the space's conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runChatClear,
}

func init() {
	chatCmd.AddCommand(chatSendCmd)
	chatCmd.AddCommand(chatHistoryCmd)
	chatCmd.AddCommand(chatClearCmd)
	rootCmd.AddCommand(chatCmd)
}

func runChatSend(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	answer, err := chatService.Send(context.Background(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}

	cmd.Println(answer.Content)
	printCitations(cmd, answer.Context)
	return nil
}

func runChatHistory(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	history := chatService.History(args[0])
	if len(history) == 0 {
		cmd.Println("No conversation yet.")
		return nil
	}

	for i := range history {
		switch history[i].Role {
		case domain.RoleUser:
			cmd.Printf("You: %s\n", history[i].Content)
		case domain.RoleAssistant:
			cmd.Printf("Tutor: %s\n", history[i].Content)
			printCitations(cmd, history[i].Context)
		}
		cmd.Println()
	}
	return nil
}

func runChatClear(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	if err := chatService.ClearHistory(args[0]); err != nil {
		return fmt.Errorf("clear history failed: %w", err)
	}

	cmd.Println("Conversation cleared.")
	return nil
}

func printCitations(cmd *cobra.Command, citations []domain.Citation) {
	if len(citations) == 0 {
		return
	}
	cmd.Println()
	cmd.Println("Sources:")
	for i := range citations {
		if citations[i].Page > 0 {
			cmd.Printf("  [%d] %s, page %d\n", i+1, citations[i].Source, citations[i].Page)
		} else {
			cmd.Printf("  [%d] %s\n", i+1, citations[i].Source)
		}
	}
}

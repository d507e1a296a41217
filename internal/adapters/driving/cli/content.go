package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage documents in a space",
	Long: `Upload documents into a space and list what a space holds.

Uploaded documents are processed by the backend before they can answer
questions; the list shows each document's processing status.

Examples:
  tutorwise content upload <space-id> ./notes.pdf
  tutorwise content upload <space-id> ./notes.pdf --title "Week 1 notes"
  tutorwise content list <space-id>
  tutorwise content watch <space-id> ./lecture-notes/`,
}

// Flags for content commands.
var contentTitle string

var contentUploadCmd = &cobra.Command{
	Use:   "upload [space-id] [file]",
	Short: "Upload one document to a space",
	Args:  cobra.ExactArgs(2),
	RunE:  runContentUpload,
}

var contentListCmd = &cobra.Command{
	Use:   "list [space-id]",
	Short: "List a space's documents",
	Args:  cobra.ExactArgs(1),
	RunE:  runContentList,
}

var contentWatchCmd = &cobra.Command{
	Use:   "watch [space-id] [dir]",
	Short: "Watch a directory and upload new documents",
	Long: `Watch a local directory and upload new or changed documents to a
space until interrupted. Each file revision is uploaded once; uploads
are rate limited to avoid flooding the backend's ingestion pipeline.

Which extensions are uploaded and the rate cap are read from the
config file (watch.extensions, watch.uploads_per_minute).`,
	Args: cobra.ExactArgs(2),
	RunE: runContentWatch,
}

func init() {
	contentUploadCmd.Flags().StringVar(
		&contentTitle, "title", "", "document title (defaults to the file name)")

	contentCmd.AddCommand(contentUploadCmd)
	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentWatchCmd)
	rootCmd.AddCommand(contentCmd)
}

func runContentUpload(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}

	content, err := contentService.Upload(context.Background(), args[0], args[1], contentTitle)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	cmd.Printf("Uploaded: %s\n", content.ID)
	cmd.Printf("  Title: %s\n", content.Title)
	cmd.Printf("  Status: %s\n", content.Status)
	return nil
}

func runContentList(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}

	contents, err := contentService.List(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("list documents failed: %w", err)
	}

	if len(contents) == 0 {
		cmd.Println("No documents in this space.")
		cmd.Println("Upload one with: tutorwise content upload <space-id> <file>")
		return nil
	}

	cmd.Println("Documents:")
	cmd.Println()
	for i := range contents {
		cmd.Printf("  %s [%s]\n", contents[i].Title, contents[i].Status)
		cmd.Printf("    ID: %s\n", contents[i].ID)
		if !contents[i].CreatedAt.IsZero() {
			cmd.Printf("    Uploaded: %s\n", contents[i].CreatedAt.Format(time.RFC3339))
		}
		cmd.Println()
	}
	return nil
}

func runContentWatch(cmd *cobra.Command, args []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s for space %s. Press Ctrl-C to stop.\n", args[1], args[0])

	err := watchService.Run(ctx, args[1], args[0])
	if errors.Is(err, context.Canceled) {
		cmd.Println("\nStopped watching.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
)

var spaceCmd = &cobra.Command{
	Use:   "space",
	Short: "Manage learning spaces",
	Long: `Create, list, inspect, update, and delete learning spaces.

A space holds uploaded documents and its own chat transcript.

Examples:
  tutorwise space create "Biology 101" --description "Cell biology notes"
  tutorwise space list
  tutorwise space show <space-id>
  tutorwise space update <space-id> --title "Biology 102"
  tutorwise space delete <space-id>`,
}

// Flags for space commands.
var (
	spaceDescription string
	spaceTitle       string
	spaceCover       string
	spaceJSON        bool
)

var spaceCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new space",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpaceCreate,
}

var spaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your spaces",
	RunE:  runSpaceList,
}

var spaceShowCmd = &cobra.Command{
	Use:   "show [space-id]",
	Short: "Show one space",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpaceShow,
}

var spaceUpdateCmd = &cobra.Command{
	Use:   "update [space-id]",
	Short: "Update a space's title, description, or cover image",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpaceUpdate,
}

var spaceDeleteCmd = &cobra.Command{
	Use:   "delete [space-id]",
	Short: "Delete a space",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpaceDelete,
}

func init() {
	spaceCreateCmd.Flags().StringVar(
		&spaceDescription, "description", "", "description for the space")
	spaceListCmd.Flags().BoolVar(&spaceJSON, "json", false, "output spaces as JSON")
	spaceUpdateCmd.Flags().StringVar(&spaceTitle, "title", "", "new title")
	spaceUpdateCmd.Flags().StringVar(&spaceDescription, "description", "", "new description")
	spaceUpdateCmd.Flags().StringVar(&spaceCover, "cover", "", "new cover image URL")

	spaceCmd.AddCommand(spaceCreateCmd)
	spaceCmd.AddCommand(spaceListCmd)
	spaceCmd.AddCommand(spaceShowCmd)
	spaceCmd.AddCommand(spaceUpdateCmd)
	spaceCmd.AddCommand(spaceDeleteCmd)
	rootCmd.AddCommand(spaceCmd)
}

func runSpaceCreate(cmd *cobra.Command, args []string) error {
	if spaceService == nil {
		return errors.New("space service not configured")
	}

	space, err := spaceService.Create(context.Background(), args[0], spaceDescription)
	if err != nil {
		return fmt.Errorf("create space failed: %w", err)
	}

	cmd.Printf("Created space: %s\n", space.ID)
	cmd.Printf("  Title: %s\n", space.Title)
	if space.Description != "" {
		cmd.Printf("  Description: %s\n", space.Description)
	}
	return nil
}

func runSpaceList(cmd *cobra.Command, _ []string) error {
	if spaceService == nil {
		return errors.New("space service not configured")
	}

	spaces, err := spaceService.List(context.Background())
	if err != nil {
		return fmt.Errorf("list spaces failed: %w", err)
	}

	if spaceJSON {
		data, err := json.MarshalIndent(spaces, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal spaces: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(spaces) == 0 {
		cmd.Println("No spaces yet.")
		cmd.Println("Create one with: tutorwise space create \"My Space\"")
		return nil
	}

	cmd.Println("Spaces:")
	cmd.Println()
	for i := range spaces {
		printSpace(cmd, spaces[i])
	}
	return nil
}

func runSpaceShow(cmd *cobra.Command, args []string) error {
	if spaceService == nil {
		return errors.New("space service not configured")
	}

	space, err := spaceService.Get(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || domain.IsAPINotFound(err) {
			return fmt.Errorf("space not found: %s", args[0])
		}
		return fmt.Errorf("get space failed: %w", err)
	}

	printSpace(cmd, space)
	return nil
}

func runSpaceUpdate(cmd *cobra.Command, args []string) error {
	if spaceService == nil {
		return errors.New("space service not configured")
	}

	// Only flags the caller set travel in the update.
	var update domain.SpaceUpdate
	if cmd.Flags().Changed("title") {
		update.Title = &spaceTitle
	}
	if cmd.Flags().Changed("description") {
		update.Description = &spaceDescription
	}
	if cmd.Flags().Changed("cover") {
		update.CoverImage = &spaceCover
	}
	if update.Title == nil && update.Description == nil && update.CoverImage == nil {
		return errors.New("nothing to update: pass --title, --description, or --cover")
	}

	space, err := spaceService.Update(context.Background(), args[0], update)
	if err != nil {
		return fmt.Errorf("update space failed: %w", err)
	}

	cmd.Printf("Updated space: %s\n", space.ID)
	printSpace(cmd, space)
	return nil
}

func runSpaceDelete(cmd *cobra.Command, args []string) error {
	if spaceService == nil {
		return errors.New("space service not configured")
	}

	if err := spaceService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("delete space failed: %w", err)
	}

	cmd.Printf("Deleted space: %s\n", args[0])
	return nil
}

func printSpace(cmd *cobra.Command, space domain.Space) {
	cmd.Printf("  %s\n", space.ID)
	cmd.Printf("    Title: %s\n", space.Title)
	if space.Description != "" {
		cmd.Printf("    Description: %s\n", space.Description)
	}
	if !space.CreatedAt.IsZero() {
		cmd.Printf("    Created: %s\n", space.CreatedAt.Format(time.RFC3339))
	}
	cmd.Println()
}

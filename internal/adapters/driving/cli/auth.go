package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Flags for register and login.
var (
	authEmail    string
	authPassword string
	authFullName string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	Long: `Create a new account on the backend and log straight into it.

The password is prompted for unless --password is given.

Examples:
  tutorwise register --email you@example.com --name "Your Name"
  tutorwise register --email you@example.com --name "Your Name" --password secret`,
	RunE: runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to an existing account",
	Long: `Authenticate against the backend and store the session locally.

The password is prompted for unless --password is given.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE:  runWhoami,
}

func init() {
	for _, c := range []*cobra.Command{registerCmd, loginCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "account email address")
		c.Flags().StringVar(&authPassword, "password", "", "account password (prompted when omitted)")
	}
	registerCmd.Flags().StringVar(&authFullName, "name", "", "display name for the account")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	if err := requireAccount(); err != nil {
		return err
	}

	email, err := promptIfEmpty(cmd, authEmail, "Email: ")
	if err != nil {
		return err
	}
	name, err := promptIfEmpty(cmd, authFullName, "Full name: ")
	if err != nil {
		return err
	}
	password, err := promptPassword(cmd, authPassword)
	if err != nil {
		return err
	}

	sess, err := accountService.Register(context.Background(), email, password, name)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	cmd.Printf("Registered and logged in as %s (%s)\n", sess.FullName, sess.Email)
	return nil
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if err := requireAccount(); err != nil {
		return err
	}

	email, err := promptIfEmpty(cmd, authEmail, "Email: ")
	if err != nil {
		return err
	}
	password, err := promptPassword(cmd, authPassword)
	if err != nil {
		return err
	}

	sess, err := accountService.Login(context.Background(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cmd.Printf("Logged in as %s (%s)\n", sess.FullName, sess.Email)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if err := requireAccount(); err != nil {
		return err
	}

	if !accountService.IsAuthenticated() {
		cmd.Println("Not logged in.")
		return nil
	}

	accountService.Logout()
	cmd.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if err := requireAccount(); err != nil {
		return err
	}

	if !accountService.IsAuthenticated() {
		cmd.Println("Not logged in.")
		return nil
	}

	sess := accountService.Current()
	cmd.Printf("%s (%s)\n", sess.FullName, sess.Email)
	cmd.Printf("User ID: %s\n", sess.UserID)
	return nil
}

// promptIfEmpty returns value, or reads one line from stdin when empty.
func promptIfEmpty(cmd *cobra.Command, value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	cmd.Print(prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("a value is required")
	}
	return line, nil
}

// promptPassword returns value, or prompts without echo on a terminal.
// Off-terminal input (pipes, tests) falls back to a plain line read.
func promptPassword(cmd *cobra.Command, value string) (string, error) {
	if value != "" {
		return value, nil
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		cmd.Print("Password: ")
		raw, err := term.ReadPassword(fd)
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		if len(raw) == 0 {
			return "", errors.New("a password is required")
		}
		return string(raw), nil
	}

	return promptIfEmpty(cmd, "", "Password: ")
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RohitDatta06/gamehub/internal/client"
)

var (
	flagUsername string
	flagEmail    string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on a score API",
	Long: `Create an account on the score API given with --api and remember the
session in the OS keyring.

Examples:
  gamehub register --api http://localhost:4000 --username alice --email alice@example.com`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to a score API",
	Long: `Sign in to the score API given with --api. The session is kept in the OS
keyring, so later 'play --api' runs submit scores as this account.

Examples:
  gamehub login --api http://localhost:4000 --email alice@example.com`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session for a score API",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func init() {
	registerCmd.Flags().StringVar(&flagUsername, "username", "", "Account name (3-20 characters)")
	for _, cmd := range []*cobra.Command{registerCmd, loginCmd} {
		cmd.Flags().StringVar(&flagEmail, "email", "", "Account email")
	}
}

func requireAPI() error {
	if flagAPI == "" {
		return errors.New("--api is required (e.g. --api http://localhost:4000)")
	}
	return nil
}

func runRegister(_ *cobra.Command, _ []string) error {
	if err := requireAPI(); err != nil {
		return err
	}
	in := bufio.NewReader(os.Stdin)
	username, err := promptDefault(in, "Username", flagUsername)
	if err != nil {
		return err
	}
	email, err := promptDefault(in, "Email", flagEmail)
	if err != nil {
		return err
	}
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	c := client.New(flagAPI)
	user, err := c.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	return remember(c, user.Username)
}

func runLogin(_ *cobra.Command, _ []string) error {
	if err := requireAPI(); err != nil {
		return err
	}
	email, err := promptDefault(bufio.NewReader(os.Stdin), "Email", flagEmail)
	if err != nil {
		return err
	}
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	c := client.New(flagAPI)
	user, err := c.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return remember(c, user.Username)
}

func runLogout(_ *cobra.Command, _ []string) error {
	if err := requireAPI(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := client.New(flagAPI).Logout(ctx); err != nil {
		logger.Warn("server logout failed", "err", err)
	}
	if err := client.DeleteCredentials(flagAPI); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// remember stores the session so later commands can use it.
func remember(c *client.Client, username string) error {
	creds := client.Credentials{Username: username, RefreshToken: c.RefreshToken()}
	if err := client.SaveCredentials(flagAPI, creds); err != nil {
		return err
	}
	fmt.Printf("Signed in as %s.\n", username)
	return nil
}

// promptDefault returns value, or asks for it on stdin when empty.
func promptDefault(in *bufio.Reader, label, value string) (string, error) {
	if value = strings.TrimSpace(value); value != "" {
		return value, nil
	}
	fmt.Printf("%s: ", label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echo.
func promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}

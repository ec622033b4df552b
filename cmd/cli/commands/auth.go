package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campuscrew/volunteerhub/pkg/core/services"
)

// LoginCmd creates the login command
func LoginCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Log in as the coordinator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("Password: ")
			reader := bufio.NewReader(os.Stdin)
			password, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = strings.TrimRight(password, "\r\n")

			session, err := services.Login(app.Ctx, app.Database, app.Logger, app.Clock,
				app.Cfg.Admin.Username, app.Cfg.Admin.PasswordHash, args[0], password)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Logged in as %s\n\n", session.Username)
			return nil
		},
	}
}

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the coordinator session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.Logout(app.Ctx, app.Database, app.Logger); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

// HashPasswordCmd creates the hashPassword command
func HashPasswordCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "hashPassword <password>",
		Short: "Hash a password for the admin.passwordHash config field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := services.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Println(hash)
			return nil
		},
	}
}

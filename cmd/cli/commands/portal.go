package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campuscrew/volunteerhub/pkg/core/services"
)

// PortalCmd creates the portal command
func PortalCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "portal <email>",
		Short: "Show a student's applications and notifications",
		Long:  `Shows everything stored for one student, looked up by email. Viewing the portal marks the student's notifications as read.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.StudentPortal(app.Ctx, app.Database, app.Logger, app.Clock, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\nStudent portal for %s <%s>\n\n", result.Name, result.Email)
			fmt.Printf("  Applied: %d   Approved: %d   Pending: %d\n\n",
				result.Stats.Total, result.Stats.Approved, result.Stats.Pending)

			fmt.Printf("Applications:\n")
			for _, a := range result.Applications {
				fmt.Printf("  %6d  %-9s  %s\n", a.ID, a.Status, a.EventName)
			}

			if len(result.Notifications) > 0 {
				fmt.Printf("\nNotifications (%d new):\n", result.UnreadCount)
				for _, n := range result.Notifications {
					fmt.Printf("  [%s] %s\n", n.Timestamp.Format("2006-01-02"), n.Message)
				}
			}
			fmt.Println()

			return nil
		},
	}
}

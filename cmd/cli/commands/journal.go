package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campuscrew/volunteerhub/pkg/core/services"
)

// JournalCmd creates the journal command
func JournalCmd(app *AppContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show the most recent journalled operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := services.RequireAdmin(app.Ctx, app.Database); err != nil {
				return err
			}

			entries, err := services.ListJournal(app.Ctx, app.Database, app.Logger, limit)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("Journal is empty.")
				return nil
			}

			fmt.Printf("\nJournal (%d entries):\n\n", len(entries))
			for _, e := range entries {
				fmt.Printf("  %s  %-22s  %-7s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.Outcome)
				for k, v := range e.Details {
					fmt.Printf("  %s=%v", k, v)
				}
				fmt.Println()
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of entries to show, newest last")
	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campuscrew/volunteerhub/pkg/core/model"
	"github.com/campuscrew/volunteerhub/pkg/core/services"
)

// ApplyCmd creates the apply command
func ApplyCmd(app *AppContext) *cobra.Command {
	var input services.SubmitInput

	cmd := &cobra.Command{
		Use:   "apply <event_id>",
		Short: "Submit a volunteer application for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := parseID(args[0], "event_id")
			if err != nil {
				return err
			}

			application, err := services.SubmitApplication(app.Ctx, app.Database, app.Logger, app.Clock, eventID, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Application submitted!\n\n")
			fmt.Printf("Application ID: %d\n", application.ID)
			fmt.Printf("Event:          %s\n", application.EventName)
			fmt.Printf("Applicant:      %s <%s>\n", application.Name, application.Email)
			fmt.Printf("Status:         %s\n\n", application.Status)
			fmt.Println("You will be notified once the coordinator reviews your application.")

			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "applicant full name")
	cmd.Flags().StringVar(&input.RollNo, "roll", "", "roll number")
	cmd.Flags().StringVar(&input.Department, "department", "", "department")
	cmd.Flags().StringVar(&input.Email, "email", "", "college email address")
	cmd.Flags().StringVar(&input.Availability, "availability", "", "availability, e.g. Full Day")
	cmd.Flags().StringVar(&input.Skills, "skills", "", "relevant skills")
	cmd.Flags().StringVar(&input.Motivation, "motivation", "", "why you want to volunteer")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("roll")
	cmd.MarkFlagRequired("department")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("availability")

	return cmd
}

// ListApplicationsCmd creates the listApplications command
func ListApplicationsCmd(app *AppContext) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "listApplications",
		Short: "List volunteer applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := services.RequireAdmin(app.Ctx, app.Database); err != nil {
				return err
			}

			filter, ok := model.ParseStatus(status)
			if !ok {
				return fmt.Errorf("unknown status %q, want pending, approved or rejected", status)
			}

			applications, err := services.ListApplications(app.Ctx, app.Database, app.Logger, filter)
			if err != nil {
				return err
			}

			if len(applications) == 0 {
				fmt.Println("No applications found.")
				return nil
			}

			fmt.Printf("\nApplications (%d):\n\n", len(applications))
			for _, a := range applications {
				fmt.Printf("  %6d  %-9s  %-25s  %s\n", a.ID, a.Status, a.Name, a.EventName)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending, approved, rejected)")
	return cmd
}

// ViewApplicationCmd creates the viewApplication command
func ViewApplicationCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewApplication <application_id>",
		Short: "Show the full details of one application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applicationID, err := parseID(args[0], "application_id")
			if err != nil {
				return err
			}

			if _, err := services.RequireAdmin(app.Ctx, app.Database); err != nil {
				return err
			}

			a, err := services.GetApplication(app.Ctx, app.Database, app.Logger, applicationID)
			if err != nil {
				return err
			}

			fmt.Printf("\nApplication %d\n\n", a.ID)
			fmt.Printf("Event:        %s (id %d)\n", a.EventName, a.EventID)
			fmt.Printf("Name:         %s\n", a.Name)
			fmt.Printf("Roll No:      %s\n", a.RollNo)
			fmt.Printf("Department:   %s\n", a.Department)
			fmt.Printf("Email:        %s\n", a.Email)
			fmt.Printf("Skills:       %s\n", a.Skills)
			fmt.Printf("Availability: %s\n", a.Availability)
			fmt.Printf("Motivation:   %s\n", a.Motivation)
			fmt.Printf("Status:       %s\n", a.Status)
			fmt.Printf("Applied:      %s\n", a.AppliedDate.Format("2006-01-02 15:04"))
			if a.StatusChangeDate != nil {
				fmt.Printf("Decided:      %s\n", a.StatusChangeDate.Format("2006-01-02 15:04"))
			}
			fmt.Println()

			return nil
		},
	}
}

// ApproveCmd creates the approve command
func ApproveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <application_id>",
		Short: "Approve a pending application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applicationID, err := parseID(args[0], "application_id")
			if err != nil {
				return err
			}

			if _, err := services.RequireAdmin(app.Ctx, app.Database); err != nil {
				return err
			}

			application, err := services.ApproveApplication(app.Ctx, app.Database, app.Logger, app.Clock, applicationID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Approved application %d: %s for %s\n\n",
				application.ID, application.Name, application.EventName)
			return nil
		},
	}
}

// RejectCmd creates the reject command
func RejectCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <application_id>",
		Short: "Reject a pending application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applicationID, err := parseID(args[0], "application_id")
			if err != nil {
				return err
			}

			if _, err := services.RequireAdmin(app.Ctx, app.Database); err != nil {
				return err
			}

			application, err := services.RejectApplication(app.Ctx, app.Database, app.Logger, app.Clock, applicationID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Rejected application %d: %s for %s\n\n",
				application.ID, application.Name, application.EventName)
			return nil
		},
	}
}

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the application dashboard totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := services.RequireAdmin(app.Ctx, app.Database); err != nil {
				return err
			}

			stats, err := services.GetDashboardStats(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nApplications\n\n")
			fmt.Printf("  Total:    %d\n", stats.Total)
			fmt.Printf("  Pending:  %d\n", stats.Pending)
			fmt.Printf("  Approved: %d\n", stats.Approved)
			fmt.Printf("  Rejected: %d\n\n", stats.Rejected)

			return nil
		},
	}
}

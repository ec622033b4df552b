package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/campuscrew/volunteerhub/pkg/core/services"
)

// ListEventsCmd creates the listEvents command
func ListEventsCmd(app *AppContext) *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "listEvents",
		Short: "List events with their volunteer capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := services.ListEvents(app.Ctx, app.Database, app.Logger, activeOnly)
			if err != nil {
				return err
			}

			if len(summaries) == 0 {
				fmt.Println("No events found.")
				return nil
			}

			fmt.Printf("\nEvents (%d):\n\n", len(summaries))
			for _, s := range summaries {
				status := "active"
				if !s.Event.IsUpcoming {
					status = "inactive"
				}
				full := ""
				if s.Stats.IsFull {
					full = "  [FULL]"
				}
				fmt.Printf("  %4d. %s (%s)%s\n", s.Event.ID, s.Event.Name, status, full)
				fmt.Printf("        %s  %s  %s\n", s.Event.Date, s.Event.Time, s.Event.Category)
				fmt.Printf("        Volunteers: %d/%d selected, %d spots remaining, %d applications\n\n",
					s.Stats.Selected, s.Stats.Total, s.Stats.Remaining, s.ApplicationCount)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "show only active events")
	return cmd
}

// AddEventCmd creates the addEvent command
func AddEventCmd(app *AppContext) *cobra.Command {
	var input services.EventInput

	cmd := &cobra.Command{
		Use:   "addEvent",
		Short: "Create a new volunteer event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := services.RequireAdmin(app.Ctx, app.Database); err != nil {
				return err
			}

			event, err := services.CreateEvent(app.Ctx, app.Database, app.Logger, app.Clock, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Event created!\n\n")
			fmt.Printf("ID:         %d\n", event.ID)
			fmt.Printf("Name:       %s\n", event.Name)
			fmt.Printf("Date:       %s  %s\n", event.Date, event.Time)
			fmt.Printf("Category:   %s\n", event.Category)
			fmt.Printf("Volunteers: %d\n\n", event.VolunteersNeeded)

			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "event name")
	cmd.Flags().StringVar(&input.Date, "date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&input.Time, "time", "", "event time, free text")
	cmd.Flags().StringVar(&input.Category, "category", "", "event category")
	cmd.Flags().IntVar(&input.VolunteersNeeded, "volunteers", 0, "number of volunteers needed")
	cmd.Flags().StringVar(&input.Description, "description", "", "event description")
	cmd.Flags().BoolVar(&input.Active, "active", true, "whether the event is open for applications")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("time")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("volunteers")

	return cmd
}

// AddEventSeriesCmd creates the addEventSeries command
func AddEventSeriesCmd(app *AppContext) *cobra.Command {
	var input services.SeriesInput

	cmd := &cobra.Command{
		Use:   "addEventSeries",
		Short: "Create a recurring series of events from a recurrence rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := services.RequireAdmin(app.Ctx, app.Database); err != nil {
				return err
			}

			events, err := services.CreateEventSeries(app.Ctx, app.Database, app.Logger, app.Clock, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Created %d events:\n\n", len(events))
			for i, event := range events {
				fmt.Printf("  %2d. %s on %s (id %d)\n", i+1, event.Name, event.Date, event.ID)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "event name")
	cmd.Flags().StringVar(&input.Time, "time", "", "event time, free text")
	cmd.Flags().StringVar(&input.Category, "category", "", "event category")
	cmd.Flags().IntVar(&input.VolunteersNeeded, "volunteers", 0, "number of volunteers needed per occurrence")
	cmd.Flags().StringVar(&input.RRule, "rrule", "", "recurrence rule, e.g. FREQ=WEEKLY;BYDAY=SA")
	cmd.Flags().IntVar(&input.Count, "count", 0, "number of occurrences to create")
	cmd.Flags().StringVar(&input.Description, "description", "", "event description")
	cmd.Flags().BoolVar(&input.Active, "active", true, "whether the events are open for applications")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("time")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("volunteers")
	cmd.MarkFlagRequired("rrule")
	cmd.MarkFlagRequired("count")

	return cmd
}

// UpdateEventCmd creates the updateEvent command
func UpdateEventCmd(app *AppContext) *cobra.Command {
	var input services.EventInput

	cmd := &cobra.Command{
		Use:   "updateEvent <event_id>",
		Short: "Update an existing event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := parseID(args[0], "event_id")
			if err != nil {
				return err
			}

			if _, err := services.RequireAdmin(app.Ctx, app.Database); err != nil {
				return err
			}

			event, err := services.UpdateEvent(app.Ctx, app.Database, app.Logger, app.Clock, eventID, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Event %d updated: %s\n\n", event.ID, event.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "event name")
	cmd.Flags().StringVar(&input.Date, "date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&input.Time, "time", "", "event time, free text")
	cmd.Flags().StringVar(&input.Category, "category", "", "event category")
	cmd.Flags().IntVar(&input.VolunteersNeeded, "volunteers", 0, "number of volunteers needed")
	cmd.Flags().StringVar(&input.Description, "description", "", "event description")
	cmd.Flags().BoolVar(&input.Active, "active", true, "whether the event is open for applications")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("time")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("volunteers")

	return cmd
}

// ToggleEventCmd creates the toggleEvent command
func ToggleEventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggleEvent <event_id>",
		Short: "Toggle an event between active and inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := parseID(args[0], "event_id")
			if err != nil {
				return err
			}

			if _, err := services.RequireAdmin(app.Ctx, app.Database); err != nil {
				return err
			}

			event, err := services.ToggleEventStatus(app.Ctx, app.Database, app.Logger, app.Clock, eventID)
			if err != nil {
				return err
			}

			status := "active"
			if !event.IsUpcoming {
				status = "inactive"
			}
			fmt.Printf("\n✓ Event %d (%s) is now %s\n\n", event.ID, event.Name, status)
			return nil
		},
	}
}

// DeleteEventCmd creates the deleteEvent command
func DeleteEventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteEvent <event_id>",
		Short: "Delete an event and all applications for it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := parseID(args[0], "event_id")
			if err != nil {
				return err
			}

			if _, err := services.RequireAdmin(app.Ctx, app.Database); err != nil {
				return err
			}

			result, err := services.DeleteEvent(app.Ctx, app.Database, app.Logger, app.Clock, eventID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Deleted event %d (%s) and %d application(s)\n\n",
				result.Event.ID, result.Event.Name, result.RemovedApplications)
			return nil
		},
	}
}

// parseID parses a numeric command line id argument
func parseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", name, err)
	}
	return id, nil
}

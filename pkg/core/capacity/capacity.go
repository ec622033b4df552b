// Package capacity computes derived volunteer statistics. Everything here is
// a pure projection over the live application set: nothing is cached, nothing
// is persisted, and callers recompute on every read.
package capacity

import (
	"strings"

	"github.com/campuscrew/volunteerhub/pkg/core/model"
)

// ComputeStats derives the volunteer capacity view for one event from the
// application set. Passing a nil event (event id did not resolve) yields the
// zero-stats sentinel rather than an error, so display paths degrade to empty
// rather than fail.
//
// Remaining is clamped at zero: if more applications were approved than the
// event needed, Selected may exceed Total while Remaining stays 0. The
// engine reports that state, it does not repair it; the approval gate in the
// lifecycle prevents it from growing.
func ComputeStats(event *model.Event, applications []model.Application) model.VolunteerStats {
	if event == nil {
		return model.VolunteerStats{}
	}

	selected := 0
	for _, app := range applications {
		if app.EventID == event.ID && app.Status == model.StatusApproved {
			selected++
		}
	}

	total := event.VolunteersNeeded
	remaining := total - selected
	if remaining < 0 {
		remaining = 0
	}

	return model.VolunteerStats{
		Selected:  selected,
		Remaining: remaining,
		Total:     total,
		IsFull:    selected >= total,
	}
}

// CountForEvent returns how many applications reference the event, in any status
func CountForEvent(eventID int64, applications []model.Application) int {
	count := 0
	for _, app := range applications {
		if app.EventID == eventID {
			count++
		}
	}
	return count
}

// DashboardStats holds the admin dashboard counters
type DashboardStats struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}

// ComputeDashboardStats counts applications by status across all events
func ComputeDashboardStats(applications []model.Application) DashboardStats {
	stats := DashboardStats{Total: len(applications)}
	for _, app := range applications {
		switch app.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusApproved:
			stats.Approved++
		case model.StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

// StudentStats holds the per-student portal counters
type StudentStats struct {
	Total    int
	Pending  int
	Approved int
}

// ComputeStudentStats counts one student's applications by status. Emails are
// compared case-insensitively so stored records from before email
// normalization still match.
func ComputeStudentStats(email string, applications []model.Application) StudentStats {
	email = strings.ToLower(email)

	var stats StudentStats
	for _, app := range applications {
		if strings.ToLower(app.Email) != email {
			continue
		}
		stats.Total++
		switch app.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusApproved:
			stats.Approved++
		}
	}
	return stats
}

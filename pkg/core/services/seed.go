package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campuscrew/volunteerhub/pkg/core/model"
)

// SeedStore defines the database operations needed for first-run seeding
type SeedStore interface {
	IsInitialized(ctx context.Context) (bool, error)
	MarkInitialized(ctx context.Context) error
	GetEvents(ctx context.Context) ([]model.Event, error)
	SaveEvents(ctx context.Context, events []model.Event) error
	GetApplications(ctx context.Context) ([]model.Application, error)
	SaveApplications(ctx context.Context, applications []model.Application) error
	SaveNotifications(ctx context.Context, notifications []model.Notification) error
}

// EnsureSeedData populates an empty store with the sample data set so a fresh
// install has something to demonstrate with. It runs on every startup but
// seeds at most once, guarded by the dataInitialized marker. Returns whether
// seeding happened.
func EnsureSeedData(ctx context.Context, database SeedStore, logger *zap.Logger, clock Clock) (bool, error) {
	events, err := database.GetEvents(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to fetch events: %w", err)
	}

	// Events are seeded whenever none are stored, independent of the marker:
	// an admin who deletes every event gets the samples back on restart, but
	// the sample applications never return once the marker is set.
	if len(events) == 0 {
		if err := database.SaveEvents(ctx, SampleEvents()); err != nil {
			return false, fmt.Errorf("failed to seed events: %w", err)
		}
		logger.Info("Seeded sample events", zap.Int("count", len(SampleEvents())))
	}

	initialized, err := database.IsInitialized(ctx)
	if err != nil {
		return false, err
	}
	if initialized {
		return false, nil
	}

	applications, err := database.GetApplications(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to fetch applications: %w", err)
	}

	if len(applications) == 0 {
		now := clock()
		if err := database.SaveApplications(ctx, SampleApplications(now)); err != nil {
			return false, fmt.Errorf("failed to seed applications: %w", err)
		}
		if err := database.SaveNotifications(ctx, SampleNotifications(now)); err != nil {
			return false, fmt.Errorf("failed to seed notifications: %w", err)
		}
	}

	if err := database.MarkInitialized(ctx); err != nil {
		return false, err
	}

	logger.Info("Seeded sample data")
	return true, nil
}

// SampleEvents returns the demo event set shipped with a fresh install
func SampleEvents() []model.Event {
	return []model.Event{
		{
			ID:               1,
			Name:             "Annual Tech Fest 2025",
			Date:             "2025-03-15",
			Time:             "09:00 AM - 06:00 PM",
			Description:      "Join us for the biggest technology festival of the year! Help manage booths, assist participants, and coordinate activities.",
			Category:         "Technical",
			VolunteersNeeded: 20,
			IsUpcoming:       true,
		},
		{
			ID:               2,
			Name:             "Cultural Night",
			Date:             "2025-02-28",
			Time:             "06:00 PM - 10:00 PM",
			Description:      "Experience diverse cultures through performances, food, and art. Volunteers needed for stage management and guest coordination.",
			Category:         "Cultural",
			VolunteersNeeded: 15,
			IsUpcoming:       true,
		},
		{
			ID:               3,
			Name:             "Career Fair 2025",
			Date:             "2025-04-10",
			Time:             "10:00 AM - 04:00 PM",
			Description:      "Connect students with potential employers. Assist with booth setup, registration, and information dissemination.",
			Category:         "Career",
			VolunteersNeeded: 25,
			IsUpcoming:       true,
		},
		{
			ID:               4,
			Name:             "Green Campus Initiative",
			Date:             "2025-03-22",
			Time:             "08:00 AM - 12:00 PM",
			Description:      "Help make our campus more environmentally friendly through tree planting and awareness campaigns.",
			Category:         "Environment",
			VolunteersNeeded: 30,
			IsUpcoming:       true,
		},
		{
			ID:               5,
			Name:             "Sports Tournament",
			Date:             "2025-02-15",
			Time:             "07:00 AM - 06:00 PM",
			Description:      "Annual inter-college sports competition. Volunteers needed for event coordination, crowd management, and athlete assistance.",
			Category:         "Sports",
			VolunteersNeeded: 18,
			IsUpcoming:       true,
		},
		{
			ID:               6,
			Name:             "Orientation Week",
			Date:             "2025-08-20",
			Time:             "09:00 AM - 05:00 PM",
			Description:      "Welcome new students to campus life. Help with registration, campus tours, and information sessions.",
			Category:         "Academic",
			VolunteersNeeded: 40,
			IsUpcoming:       true,
		},
	}
}

// SampleApplications returns the demo applications, dated relative to now
func SampleApplications(now time.Time) []model.Application {
	dayAgo := now.Add(-24 * time.Hour)
	twoDaysAgo := now.Add(-48 * time.Hour)
	threeDaysAgo := now.Add(-72 * time.Hour)

	return []model.Application{
		{
			ID:           1001,
			EventID:      1,
			EventName:    "Annual Tech Fest 2025",
			Name:         "John Doe",
			RollNo:       "CS001",
			Department:   "Computer Science",
			Email:        "john.doe@college.edu",
			Skills:       "Web development, Event management",
			Availability: "Full Day",
			Motivation:   "Passionate about technology and helping fellow students",
			Status:       model.StatusPending,
			AppliedDate:  dayAgo,
		},
		{
			ID:               1002,
			EventID:          2,
			EventName:        "Cultural Night",
			Name:             "Jane Smith",
			RollNo:           "BA002",
			Department:       "Business Administration",
			Email:            "jane.smith@college.edu",
			Skills:           "Public speaking, Coordination",
			Availability:     "Evening Only",
			Motivation:       "Love organizing cultural events",
			Status:           model.StatusApproved,
			AppliedDate:      twoDaysAgo,
			StatusChangeDate: &dayAgo,
		},
		{
			ID:               1003,
			EventID:          3,
			EventName:        "Career Fair 2025",
			Name:             "Alice Johnson",
			RollNo:           "IT003",
			Department:       "Information Technology",
			Email:            "alice.johnson@college.edu",
			Skills:           "Communication, Leadership",
			Availability:     "Full Day",
			Motivation:       "Want to help fellow students with career guidance",
			Status:           model.StatusApproved,
			AppliedDate:      threeDaysAgo,
			StatusChangeDate: &twoDaysAgo,
		},
	}
}

// SampleNotifications returns the demo notifications matching the approved
// sample applications
func SampleNotifications(now time.Time) []model.Notification {
	return []model.Notification{
		{
			ID:           2001,
			StudentEmail: "jane.smith@college.edu",
			EventName:    "Cultural Night",
			Type:         model.NotificationApproved,
			Message:      "Congratulations! You have been selected as a volunteer for Cultural Night.",
			Timestamp:    now.Add(-24 * time.Hour),
			Read:         false,
		},
		{
			ID:           2002,
			StudentEmail: "alice.johnson@college.edu",
			EventName:    "Career Fair 2025",
			Type:         model.NotificationApproved,
			Message:      "Congratulations! You have been selected as a volunteer for Career Fair 2025.",
			Timestamp:    now.Add(-48 * time.Hour),
			Read:         false,
		},
	}
}

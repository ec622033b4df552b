package services

import (
	"time"

	"github.com/campuscrew/volunteerhub/pkg/core/model"
)

// Clock supplies the current time. Injected so tests control timestamps and
// the ids derived from them.
type Clock func() time.Time

// nextID allocates a record id: the current millisecond timestamp, bumped
// past the highest existing id so ids stay unique and monotonic even when
// several records are created within the same millisecond.
func nextID(clock Clock, existing ...int64) int64 {
	id := clock().UnixMilli()
	for _, e := range existing {
		if e >= id {
			id = e + 1
		}
	}
	return id
}

func applicationIDs(applications []model.Application) []int64 {
	ids := make([]int64, len(applications))
	for i, app := range applications {
		ids[i] = app.ID
	}
	return ids
}

func eventIDs(events []model.Event) []int64 {
	ids := make([]int64, len(events))
	for i, event := range events {
		ids[i] = event.ID
	}
	return ids
}

func notificationIDs(notifications []model.Notification) []int64 {
	ids := make([]int64, len(notifications))
	for i, notif := range notifications {
		ids[i] = notif.ID
	}
	return ids
}

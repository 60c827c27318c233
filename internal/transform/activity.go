package transform

import (
	"strings"
	"time"

	"github.com/j-veylop/trafficbuddy-tui/internal/models"
)

// RecentActivityLimit is how many entries the dashboard table shows.
const RecentActivityLimit = 5

// ActivityTimeLayout matches the en-US locale date/time rendering.
const ActivityTimeLayout = "1/2/2006, 3:04:05 PM"

// ActivityRow is the display form of an ActivityEntry.
type ActivityRow struct {
	ID          string
	Type        string
	Description string
	Location    string
	Time        string
	Status      models.ActivityStatus
}

// RecentRows returns display rows for the first limit entries, in received
// order. The entries themselves are not modified.
func RecentRows(entries []models.ActivityEntry, limit int, loc *time.Location) []ActivityRow {
	if limit < 0 {
		limit = 0
	}
	n := min(len(entries), limit)
	if loc == nil {
		loc = time.Local
	}

	rows := make([]ActivityRow, 0, n)
	for _, e := range entries[:n] {
		rows = append(rows, ActivityRow{
			ID:          e.ID,
			Type:        e.QueryType,
			Description: e.Description,
			Location:    ShortAddress(e.Location.Address),
			Status:      e.Status,
			Time:        FormatActivityTime(e.Timestamp, loc),
		})
	}
	return rows
}

// ShortAddress keeps the first two comma-separated segments of an address.
// Segments are rejoined as-is, so "123 Main St, Springfield, IL" becomes
// "123 Main St, Springfield".
func ShortAddress(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ",")
}

// FormatActivityTime renders a report timestamp, or "-" when it is unknown.
func FormatActivityTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(loc).Format(ActivityTimeLayout)
}

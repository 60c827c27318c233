package models

import (
	"encoding/json"
	"strings"
	"time"
)

// ActivityStatus is the workflow status of a traffic report.
type ActivityStatus string

const (
	// StatusPending marks a report nobody has picked up yet.
	StatusPending ActivityStatus = "Pending"
	// StatusInProgress marks a report being worked on.
	StatusInProgress ActivityStatus = "In Progress"
	// StatusResolved marks a closed report.
	StatusResolved ActivityStatus = "Resolved"
	// StatusRejected marks a report that was dismissed.
	StatusRejected ActivityStatus = "Rejected"
)

// Location is where a report was filed.
type Location struct {
	Address string `json:"address"`
}

// ActivityEntry is a single recently filed traffic report.
type ActivityEntry struct {
	Timestamp   time.Time      `json:"timestamp"`
	ID          string         `json:"_id"`
	QueryType   string         `json:"query_type"`
	Description string         `json:"description"`
	Status      ActivityStatus `json:"status"`
	Location    Location       `json:"location"`
}

// activityTimeLayouts are tried in order when decoding timestamps.
var activityTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON decodes an entry, leaving Timestamp zero when the backend
// sends a value none of the known layouts accept.
func (a *ActivityEntry) UnmarshalJSON(data []byte) error {
	type plain ActivityEntry
	var raw struct {
		plain
		Timestamp json.RawMessage `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = ActivityEntry(raw.plain)
	a.Timestamp = parseActivityTime(raw.Timestamp)
	return nil
}

func parseActivityTime(raw json.RawMessage) time.Time {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return time.Time{}
	}
	s = strings.TrimSpace(s)
	for _, layout := range activityTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

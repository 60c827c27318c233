// Package models defines data structures and domain types.
package models

// DayCount is one bucket of the reports-per-day aggregate.
// Bucket holds the aggregation key, usually a "2006-01-02" date.
type DayCount struct {
	Bucket string `json:"_id"`
	Count  int    `json:"count"`
}

// TypeCount is one bucket of the reports-per-category aggregate.
type TypeCount struct {
	Label string `json:"_id"`
	Count int    `json:"count"`
}

// QueryStatus holds report counts grouped by workflow status.
type QueryStatus struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
	Rejected   int `json:"rejected"`
}

// DashboardSummary is the aggregate payload of /api/dashboard/summary.
type DashboardSummary struct {
	QueriesPerDay  []DayCount  `json:"queriesPerDay"`
	QueryTypes     []TypeCount `json:"queryTypes"`
	QueryStatus    QueryStatus `json:"queryStatus"`
	TotalQueries   int         `json:"totalQueries"`
	UserCount      int         `json:"userCount"`
	ActiveSessions int         `json:"activeSessions"`
}

// EmptySummary returns a zero summary with non-nil, empty sequences.
func EmptySummary() DashboardSummary {
	return DashboardSummary{
		QueriesPerDay: make([]DayCount, 0),
		QueryTypes:    make([]TypeCount, 0),
	}
}

// Dashboard bundles both resources of a single successful fetch.
type Dashboard struct {
	Summary  DashboardSummary
	Activity []ActivityEntry
}

package domain

import "time"

// Impression is a record of an ad being shown. Append-only.
type Impression struct {
	ID           int64
	CampaignID   int64
	PropertyCode string
	SessionID    string
	Placement    string
	UserAgent    string
	Attribution  Attribution
	CreatedAt    time.Time
}

// Click is a record of a click event. Append-only. RevenueEstimate feeds the
// RPM computation for the campaign/property pair.
type Click struct {
	ID              int64
	CampaignID      int64
	PropertyCode    string
	SessionID       string
	Placement       string
	UserAgent       string
	RevenueEstimate float64
	Attribution     Attribution
	CreatedAt       time.Time
}

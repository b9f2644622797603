package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Totals are the backend-computed click counters for a link.
// Unique is opaque: the client never derives it from events.
type Totals struct {
	Total  int `json:"total"`
	Unique int `json:"unique"`
}

// BreakdownEntry is one category of a breakdown.
// Key is the raw category value; "" and "None" are preserved.
type BreakdownEntry struct {
	Key     string `json:"key"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// Breakdowns groups the three categorical breakdowns of a link
type Breakdowns struct {
	Device  []BreakdownEntry `json:"device"`
	Browser []BreakdownEntry `json:"browser"`
	Country []BreakdownEntry `json:"country"`
}

// TimelineBucket counts the clicks of one calendar day
type TimelineBucket struct {
	Day   string `json:"day"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AnalyticsView is the derived projection of a click snapshot for one link
type AnalyticsView struct {
	LinkID         int64            `json:"link_id"`
	ShortHash      string           `json:"short_hash"`
	TotalClicks    int              `json:"total_clicks"`
	UniqueClicks   int              `json:"unique_clicks"`
	Breakdowns     Breakdowns       `json:"breakdowns"`
	Timeline       []TimelineBucket `json:"timeline"`
	RecentActivity []ClickEvent     `json:"recent_activity"`
	TopLocation    string           `json:"top_location"`
	GeneratedAt    time.Time        `json:"generated_at"`
}

// AnalyticsStatus is the load state of the selected link's analytics
type AnalyticsStatus string

const (
	AnalyticsIdle        AnalyticsStatus = "idle"
	AnalyticsLoading     AnalyticsStatus = "loading"
	AnalyticsReady       AnalyticsStatus = "ready"
	AnalyticsUnavailable AnalyticsStatus = "unavailable"
)

// AnalyticsPayload is data.analytics of the GraphQL analytics query
type AnalyticsPayload struct {
	TotalClicks      int            `json:"totalClicks"`
	UniqueClicks     int            `json:"uniqueClicks"`
	DeviceBreakdown  string         `json:"deviceBreakdown"`
	BrowserBreakdown string         `json:"browserBreakdown"`
	CountryBreakdown string         `json:"countryBreakdown"`
	Clicks           []ClickPayload `json:"clicks"`
}

// ReportedBreakdowns are the server-side breakdowns after decoding
type ReportedBreakdowns struct {
	Device  map[string]int
	Browser map[string]int
	Country map[string]int
}

// DecodeBreakdowns decodes the JSON-encoded breakdown strings.
// Any malformed payload fails the whole decode.
func (p *AnalyticsPayload) DecodeBreakdowns() (*ReportedBreakdowns, error) {
	device, err := decodeBreakdown("deviceBreakdown", p.DeviceBreakdown)
	if err != nil {
		return nil, err
	}
	browser, err := decodeBreakdown("browserBreakdown", p.BrowserBreakdown)
	if err != nil {
		return nil, err
	}
	country, err := decodeBreakdown("countryBreakdown", p.CountryBreakdown)
	if err != nil {
		return nil, err
	}
	return &ReportedBreakdowns{Device: device, Browser: browser, Country: country}, nil
}

// Events converts the wire clicks into ClickEvents
func (p *AnalyticsPayload) Events() []ClickEvent {
	events := make([]ClickEvent, 0, len(p.Clicks))
	for _, c := range p.Clicks {
		events = append(events, c.ToEvent())
	}
	return events
}

// Totals returns the backend counters
func (p *AnalyticsPayload) Totals() Totals {
	return Totals{Total: p.TotalClicks, Unique: p.UniqueClicks}
}

func decodeBreakdown(field, raw string) (map[string]int, error) {
	out := map[string]int{}
	if raw == "" {
		return nil, fmt.Errorf("%s: empty payload", field)
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%s: null payload", field)
	}
	return out, nil
}

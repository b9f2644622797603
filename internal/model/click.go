package model

import (
	"time"
)

// ClickEvent represents one recorded visit to a short link.
// Empty strings mean the attribute was absent in the source feed.
type ClickEvent struct {
	CreatedAt    time.Time `json:"created_at"`
	RawCreatedAt string    `json:"raw_created_at,omitempty"`
	IPAddress    string    `json:"ip_address"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	Referrer     string    `json:"referrer"`
	DeviceType   string    `json:"device_type"`
	Browser      string    `json:"browser"`
}

// HasTimestamp reports whether CreatedAt was parsed from the feed
func (c ClickEvent) HasTimestamp() bool {
	return !c.CreatedAt.IsZero()
}

// timestampLayouts are the formats the analytics backend has been seen to emit
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp parses a click timestamp. Timestamps without a zone are UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ClickPayload is one entry of analytics.clicks in the GraphQL response
type ClickPayload struct {
	CreatedAt  string  `json:"createdAt"`
	IPAddress  *string `json:"ipAddress"`
	Country    *string `json:"country"`
	City       *string `json:"city"`
	Referrer   *string `json:"referrer"`
	DeviceType *string `json:"deviceType"`
	Browser    *string `json:"browser"`
}

// ToEvent converts a wire click into a ClickEvent
func (p ClickPayload) ToEvent() ClickEvent {
	ev := ClickEvent{
		RawCreatedAt: p.CreatedAt,
		IPAddress:    deref(p.IPAddress),
		Country:      deref(p.Country),
		City:         deref(p.City),
		Referrer:     deref(p.Referrer),
		DeviceType:   deref(p.DeviceType),
		Browser:      deref(p.Browser),
	}
	if t, ok := ParseTimestamp(p.CreatedAt); ok {
		ev.CreatedAt = t
	}
	return ev
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

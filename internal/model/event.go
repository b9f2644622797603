package model

import (
	"time"
)

// LinkEventType names a change to an owner's link list
type LinkEventType string

const (
	LinkCreated LinkEventType = "link.created"
	LinkDeleted LinkEventType = "link.deleted"
)

// LinkEvent is broadcast so that other open dashboards of the same owner
// can refresh their link list
type LinkEvent struct {
	ID         string        `json:"id"`
	Type       LinkEventType `json:"type"`
	OwnerID    string        `json:"owner_id"`
	LinkID     int64         `json:"link_id,omitempty"`
	ShortHash  string        `json:"short_hash"`
	Origin     string        `json:"origin"`
	OccurredAt time.Time     `json:"occurred_at"`
}

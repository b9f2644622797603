package model

import (
	"time"
)

// Link represents a shortening mapping owned by a user
type Link struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID     string    `json:"user_id" gorm:"column:user_id;type:varchar(64);index;not null"`
	OriginalURL string    `json:"original_url" gorm:"type:varchar(2048);not null"`
	ShortHash   string    `json:"short_hash" gorm:"type:varchar(32);uniqueIndex;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// QRStatus reports whether the QR step of a creation completed
type QRStatus string

const (
	QRReady       QRStatus = "ready"
	QRUnavailable QRStatus = "unavailable"
)

// CreationResult is the outcome of the shorten + QR workflow.
// A result with QRStatus unavailable still carries a usable link.
type CreationResult struct {
	Link         Link     `json:"link"`
	ShortURL     string   `json:"short_url"`
	QRCodeBase64 string   `json:"qrcode_base64,omitempty"`
	QRStatus     QRStatus `json:"qr_status"`
	QRDetail     string   `json:"qr_detail,omitempty"`
}

// HasQR reports whether an image payload is present
func (r *CreationResult) HasQR() bool {
	return r != nil && r.QRStatus == QRReady && r.QRCodeBase64 != ""
}

// ShortenRequest is the body of POST /shorten_url
type ShortenRequest struct {
	Link   string `json:"link"`
	UserID string `json:"user_id"`
}

// ShortenResponse is the success body of POST /shorten_url
type ShortenResponse struct {
	ShortURL    string `json:"short_url"`
	ShortHash   string `json:"short_hash"`
	OriginalURL string `json:"original_url"`
}

// QRCodeRequest is the body of POST /create_qrcode
type QRCodeRequest struct {
	Link string `json:"link"`
}

// QRCodeResponse is the success body of POST /create_qrcode
type QRCodeResponse struct {
	QRCodeBase64 string `json:"qrcode_base64"`
}

// CreateLinkRequest is the dashboard request to create a link
type CreateLinkRequest struct {
	URL string `json:"url"`
}

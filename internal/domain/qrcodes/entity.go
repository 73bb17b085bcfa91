package qrcodes

import "time"

// QRCodeID identifier type
type QRCodeID string

// QRCode metadata for a generated code. The PNG itself lives in object
// storage; only the public URL is persisted. History is retained but only
// the most recent row is surfaced.
type QRCode struct {
	ID        QRCodeID  `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	ImageURL  string    `json:"image_url"`
	PageType  string    `json:"page_type"`
	CreatedAt time.Time `json:"created_at"`
}

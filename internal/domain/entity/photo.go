package entity

import "time"

// PhotoConnection is the caller-supplied photo library session: an optional
// album id and a bearer credential, persisted per user.
type PhotoConnection struct {
	UserID        string    `json:"user_id" firestore:"userId"`
	AlbumID       string    `json:"album_id,omitempty" firestore:"albumId,omitempty"`
	AccessToken   string    `json:"-" firestore:"accessToken"`
	SchemaVersion int       `json:"schema_version" firestore:"schemaVersion"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}

// TicketPhoto is one matched proof-of-purchase image with parsed filename
// tokens and sized URL variants.
type TicketPhoto struct {
	MediaID      string `json:"media_id"`
	Filename     string `json:"filename"`
	OrderNumber  string `json:"order_number"`
	TicketNumber string `json:"ticket_number"`
	ThumbnailURL string `json:"thumbnail_url"`
	FullURL      string `json:"full_url"`
	CreationTime string `json:"creation_time"`
}

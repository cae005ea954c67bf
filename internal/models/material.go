package models

import "time"

const (
	SourceTypePDF     = "pdf"
	SourceTypeYouTube = "youtube"
)

type Material struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Title      string    `bson:"title" json:"title"`
	Content    string    `bson:"content" json:"content"`
	SourceType string    `bson:"source_type" json:"source_type"`
	SourceURL  string    `bson:"source_url,omitempty" json:"source_url,omitempty"`
	OwnerID    string    `bson:"owner_id" json:"owner_id"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

package entity

import "github.com/google/uuid"

type Media struct {
	BaseSimple
	UploadedBy   uuid.UUID `db:"uploaded_by"`
	FileName     string    `db:"file_name"`
	OriginalName string    `db:"original_name"`
	MimeType     string    `db:"mime_type"`
	SizeBytes    int64     `db:"size_bytes"`
	URL          string    `db:"url"`
	ThumbnailURL *string   `db:"thumbnail_url"`
}

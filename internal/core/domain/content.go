package domain

import "time"

// ContentStatus is the backend processing state of an uploaded document.
type ContentStatus string

const (
	// ContentProcessing means ingestion has not finished yet.
	ContentProcessing ContentStatus = "processing"
	// ContentProcessed means the document is indexed and chattable.
	ContentProcessed ContentStatus = "processed"
	// ContentFailed means ingestion failed.
	ContentFailed ContentStatus = "failed"
)

// Content is an uploaded document belonging to a space.
type Content struct {
	ID        string        `json:"id"`
	SpaceID   string        `json:"space_id"`
	OwnerID   string        `json:"owner_id,omitempty"`
	Title     string        `json:"title"`
	MimeType  string        `json:"mime_type"`
	Status    ContentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// UploadRequest describes one file upload. The file metadata travels as
// query parameters on the upload endpoint; only the file bytes go in the
// multipart body. That placement is the backend contract, not a choice
// the caller can make per call.
type UploadRequest struct {
	SpaceID  string
	OwnerID  string
	Title    string
	FileName string
	FilePath string
}

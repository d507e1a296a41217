package domain

import "time"

// Space is a named collection of uploaded documents with a chat context.
type Space struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `json:"owner_id"`
	CoverImage  string    `json:"cover_image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SpaceCreate is the payload for creating a space.
type SpaceCreate struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	OwnerID     string `json:"owner_id"`
	CoverImage  string `json:"cover_image,omitempty"`
}

// SpaceUpdate is a partial update; nil fields are left unchanged.
type SpaceUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	CoverImage  *string `json:"cover_image,omitempty"`
}

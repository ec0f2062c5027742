package dto

import "time"

// AlbumSummary is the list form of an album, private or public.
type AlbumSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ImageCount int       `json:"image_count"`
	IsPublic   bool      `json:"is_public"`
	SharePath  string    `json:"share_path,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// AlbumDetail is one album with its member images resolved, plus the owner's
// remaining images that could still be added.
type AlbumDetail struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	IsPublic  bool              `json:"is_public"`
	Images    []ImageDescriptor `json:"images"`
	Available []ImageDescriptor `json:"available"`
}

// SharedAlbum is the read-only public share view. Missing member images are
// silently skipped.
type SharedAlbum struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Images []ImageDescriptor `json:"images"`
}

// AutoCreateResult reports the outcome of semantic album generation. A zero
// Matched with an empty AlbumID means no candidate cleared the score
// threshold; that is not an error.
type AutoCreateResult struct {
	AlbumID string `json:"album_id,omitempty"`
	Matched int    `json:"matched"`
}

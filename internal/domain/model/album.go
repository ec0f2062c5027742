package model

import "time"

// Album is a named set of image ids owned by one user. IsPublic mirrors the
// existence of the PublicAlbum record with the same id; the two image-id sets
// must stay identical after every completed membership mutation.
type Album struct {
	ID        string    `bson:"_id"`
	Owner     string    `bson:"owner"`
	Name      string    `bson:"name"`
	ImageIDs  []string  `bson:"image_ids"`
	CreatedAt time.Time `bson:"created_at"`
	IsPublic  bool      `bson:"is_public"`
}

// PublicAlbum is the denormalized read replica of a public Album, kept in a
// flat namespace so share pages can resolve it without knowing the owner.
type PublicAlbum struct {
	ID        string   `bson:"_id"`
	OwnerID   string   `bson:"owner_id"`
	Name      string   `bson:"name"`
	ImageIDs  []string `bson:"image_ids"`
	SharePath string   `bson:"share_path"`
}

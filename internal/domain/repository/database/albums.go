package database

import (
	"context"

	"photovault/internal/domain/model"
)

// AlbumStore is the metadata-store surface for albums and their public
// mirrors. Membership mutations (Create, AddImage, RemoveImage, ScrubImage)
// apply the private record and the mirror as one atomic unit; Delete is
// deliberately two independent deletes.
type AlbumStore interface {
	// Create persists the private record and, when mirror is non-nil, the
	// public mirror in the same atomic write.
	Create(ctx context.Context, album *model.Album, mirror *model.PublicAlbum) error

	// AddImage set-inserts imageID into the album's image set and, when the
	// album is public, the mirror's set. Idempotent.
	AddImage(ctx context.Context, owner, albumID, imageID string, public bool) error

	// RemoveImage is the symmetric set-removal. Idempotent.
	RemoveImage(ctx context.Context, owner, albumID, imageID string, public bool) error

	// Delete removes the private record and, when public, the mirror as two
	// independent deletes; a failed second delete orphans the mirror.
	Delete(ctx context.Context, owner, albumID string, public bool) error

	// ScrubImage removes imageID from every album and every public mirror
	// belonging to owner, atomically across all matched records.
	ScrubImage(ctx context.Context, owner, imageID string) error

	GetByID(ctx context.Context, owner, albumID string) (*model.Album, error)
	GetPublic(ctx context.Context, albumID string) (*model.PublicAlbum, error)
	ListByOwner(ctx context.Context, owner string) ([]model.Album, error)
	ListPublicByOwner(ctx context.Context, owner string) ([]model.PublicAlbum, error)
}

package abstraction

import (
	"context"

	"photovault/internal/domain/dto"
)

// PeopleFinder defines the interface for person search and face management.
type PeopleFinder interface {
	Search(ctx context.Context, owner, name string) ([]dto.PersonImage, error)
	Faces(ctx context.Context, owner string) ([]dto.Face, error)
	FaceCrop(ctx context.Context, owner, faceID string) ([]byte, string, error)
	NameFace(ctx context.Context, owner, faceID, name string) error
}

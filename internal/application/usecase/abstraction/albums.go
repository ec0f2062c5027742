package abstraction

import (
	"context"

	"photovault/internal/domain/dto"
)

// AlbumManager defines the interface for the album lifecycle, membership
// mutations and the image delete cascade.
type AlbumManager interface {
	Create(ctx context.Context, owner, name string, imageIDs []string, public bool) (string, error)
	AddImage(ctx context.Context, owner, albumID, imageID string, public bool) error
	RemoveImage(ctx context.Context, owner, albumID, imageID string, public bool) error
	Delete(ctx context.Context, owner, albumID string, public bool) error
	DeleteImageCascade(ctx context.Context, owner, imageID string) error
	List(ctx context.Context, owner, scope string) ([]dto.AlbumSummary, error)
	Get(ctx context.Context, owner, albumID string, public bool) (dto.AlbumDetail, error)
	AutoCreate(ctx context.Context, owner, name string, public bool) (dto.AutoCreateResult, error)
}

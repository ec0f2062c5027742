package abstraction

import (
	"context"

	"photovault/internal/domain/dto"
)

// Sharer defines the interface for resolving public album views.
type Sharer interface {
	Get(ctx context.Context, albumID string) (dto.SharedAlbum, error)
}

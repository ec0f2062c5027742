package usecase

import (
	"context"

	"photovault/internal/domain/dto"
	repoDB "photovault/internal/domain/repository/database"
	"photovault/pkg/logger"
)

// Share resolves public album views. No session is involved: the share
// surface is reachable by anyone holding the album id.
type Share struct {
	store  repoDB.AlbumStore
	images repoDB.ImageLister
}

func NewShare(store repoDB.AlbumStore, images repoDB.ImageLister) *Share {
	return &Share{
		store:  store,
		images: images,
	}
}

// Get looks up a public mirror by album id. A missing or never-shared album
// yields errs.ErrNotFound; member images that no longer resolve are skipped.
func (s *Share) Get(ctx context.Context, albumID string) (dto.SharedAlbum, error) {
	public, err := s.store.GetPublic(ctx, albumID)
	if err != nil {
		return dto.SharedAlbum{}, err
	}

	images, err := s.images.ListByIDs(ctx, public.OwnerID, public.ImageIDs)
	if err != nil {
		return dto.SharedAlbum{}, err
	}

	if len(images) < len(public.ImageIDs) {
		logger.Warn("shared album references missing images",
			"album", albumID, "referenced", len(public.ImageIDs), "resolved", len(images))
	}

	return dto.SharedAlbum{
		ID:     public.ID,
		Name:   public.Name,
		Images: toDescriptors(images),
	}, nil
}

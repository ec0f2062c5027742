package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"photovault/internal/domain/dto"
	"photovault/internal/domain/errs"
	"photovault/internal/domain/model"
	"photovault/internal/domain/repository/blob"
	repoDB "photovault/internal/domain/repository/database"
	"photovault/internal/domain/repository/notifier"
	"photovault/internal/domain/repository/recognition"
	"photovault/pkg/logger"
)

// matchScoreThreshold is the fixed cut-off for semantic album generation:
// only text-embed matches scoring strictly above it become candidates.
const matchScoreThreshold = 0.2

// Albums maintains the private-record/public-mirror consistency invariant:
// every membership mutation goes through the store's atomic multi-document
// write, so the two image-id sets never diverge under a completed operation.
type Albums struct {
	store        repoDB.AlbumStore
	images       repoDB.ImageLister
	retriever    repoDB.ImageRetriever
	imageRemover repoDB.ImageRemover
	blobRemover  blob.Remover
	recognizer   recognition.Client
	publisher    notifier.Publisher
}

func NewAlbums(store repoDB.AlbumStore, images repoDB.ImageLister, retriever repoDB.ImageRetriever,
	imageRemover repoDB.ImageRemover, blobRemover blob.Remover, recognizer recognition.Client,
	publisher notifier.Publisher,
) *Albums {
	return &Albums{
		store:        store,
		images:       images,
		retriever:    retriever,
		imageRemover: imageRemover,
		blobRemover:  blobRemover,
		recognizer:   recognizer,
		publisher:    publisher,
	}
}

// Create validates that every referenced image belongs to the owner before
// writing the album; a foreign id rejects the whole request.
func (a *Albums) Create(ctx context.Context, owner, name string, imageIDs []string, public bool) (string, error) {
	if owner == "" {
		return "", errs.ErrNotAuthenticated
	}
	if strings.TrimSpace(name) == "" {
		return "", errs.ErrEmptyAlbumName
	}

	ids := dedupe(imageIDs)

	if len(ids) > 0 {
		owned, err := a.images.ListByIDs(ctx, owner, ids)
		if err != nil {
			return "", err
		}
		if len(owned) != len(ids) {
			return "", errs.ErrForeignImageReference
		}
	}

	id := uuid.New().String()
	album := &model.Album{
		ID:        id,
		Owner:     owner,
		Name:      name,
		ImageIDs:  ids,
		CreatedAt: time.Now().UTC(),
		IsPublic:  public,
	}

	var mirror *model.PublicAlbum
	if public {
		mirror = &model.PublicAlbum{
			ID:        id,
			OwnerID:   owner,
			Name:      name,
			ImageIDs:  ids,
			SharePath: "/share/" + id,
		}
	}

	if err := a.store.Create(ctx, album, mirror); err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrMetadataWrite, err)
	}

	a.notify(ctx, "albums/"+owner)

	return id, nil
}

// AddImage set-inserts the image into the album and its mirror. Idempotent.
func (a *Albums) AddImage(ctx context.Context, owner, albumID, imageID string, public bool) error {
	if owner == "" {
		return errs.ErrNotAuthenticated
	}

	if err := a.store.AddImage(ctx, owner, albumID, imageID, public); err != nil {
		return err
	}

	a.notify(ctx, "albums/"+owner)

	return nil
}

// RemoveImage is the symmetric set-removal. Idempotent.
func (a *Albums) RemoveImage(ctx context.Context, owner, albumID, imageID string, public bool) error {
	if owner == "" {
		return errs.ErrNotAuthenticated
	}

	if err := a.store.RemoveImage(ctx, owner, albumID, imageID, public); err != nil {
		return err
	}

	a.notify(ctx, "albums/"+owner)

	return nil
}

func (a *Albums) Delete(ctx context.Context, owner, albumID string, public bool) error {
	if owner == "" {
		return errs.ErrNotAuthenticated
	}

	if err := a.store.Delete(ctx, owner, albumID, public); err != nil {
		return err
	}

	a.notify(ctx, "albums/"+owner)

	return nil
}

// DeleteImageCascade scrubs the image from every album and mirror first, then
// deletes the metadata record, then the blob. The scrub runs before the
// record disappears so readers never resolve a dangling id; the trailing blob
// delete is outside any atomic unit and may orphan the blob on failure.
func (a *Albums) DeleteImageCascade(ctx context.Context, owner, imageID string) error {
	if owner == "" {
		return errs.ErrNotAuthenticated
	}

	if _, err := a.retriever.GetByID(ctx, owner, imageID); err != nil {
		return err
	}

	if err := a.store.ScrubImage(ctx, owner, imageID); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrMetadataWrite, err)
	}

	if err := a.imageRemover.Remove(ctx, owner, imageID); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrMetadataWrite, err)
	}

	if err := a.blobRemover.Remove(ctx, owner, imageID); err != nil {
		logger.Error("blob delete failed after metadata delete, blob orphaned",
			"image", imageID, "owner", owner, "err", err)
	}

	a.notify(ctx, "images/"+owner)
	a.notify(ctx, "albums/"+owner)

	return nil
}

func (a *Albums) List(ctx context.Context, owner, scope string) ([]dto.AlbumSummary, error) {
	if owner == "" {
		return nil, errs.ErrNotAuthenticated
	}

	if scope == "public" {
		mirrors, err := a.store.ListPublicByOwner(ctx, owner)
		if err != nil {
			return nil, err
		}

		summaries := make([]dto.AlbumSummary, 0, len(mirrors))
		for _, m := range mirrors {
			summaries = append(summaries, dto.AlbumSummary{
				ID:         m.ID,
				Name:       m.Name,
				ImageCount: len(m.ImageIDs),
				IsPublic:   true,
				SharePath:  m.SharePath,
			})
		}

		return summaries, nil
	}

	albums, err := a.store.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.AlbumSummary, 0, len(albums))
	for _, alb := range albums {
		summaries = append(summaries, dto.AlbumSummary{
			ID:         alb.ID,
			Name:       alb.Name,
			ImageCount: len(alb.ImageIDs),
			IsPublic:   alb.IsPublic,
			CreatedAt:  alb.CreatedAt,
		})
	}

	return summaries, nil
}

func (a *Albums) Get(ctx context.Context, owner, albumID string, public bool) (dto.AlbumDetail, error) {
	if owner == "" {
		return dto.AlbumDetail{}, errs.ErrNotAuthenticated
	}

	var name string
	var imageIDs []string

	// Mirror members live in the album owner's image namespace, which is not
	// necessarily the caller's.
	imageOwner := owner

	if public {
		mirror, err := a.store.GetPublic(ctx, albumID)
		if err != nil {
			return dto.AlbumDetail{}, err
		}
		name, imageIDs = mirror.Name, mirror.ImageIDs
		imageOwner = mirror.OwnerID
	} else {
		album, err := a.store.GetByID(ctx, owner, albumID)
		if err != nil {
			return dto.AlbumDetail{}, err
		}
		name, imageIDs = album.Name, album.ImageIDs
	}

	members, err := a.images.ListByIDs(ctx, imageOwner, imageIDs)
	if err != nil {
		return dto.AlbumDetail{}, err
	}

	all, err := a.images.ListByOwner(ctx, owner, nil, 0)
	if err != nil {
		return dto.AlbumDetail{}, err
	}

	inAlbum := make(map[string]struct{}, len(imageIDs))
	for _, id := range imageIDs {
		inAlbum[id] = struct{}{}
	}

	var available []model.Image
	for _, img := range all {
		if _, ok := inAlbum[img.ID]; !ok {
			available = append(available, img)
		}
	}

	return dto.AlbumDetail{
		ID:        albumID,
		Name:      name,
		IsPublic:  public,
		Images:    toDescriptors(members),
		Available: toDescriptors(available),
	}, nil
}

// AutoCreate names an album, asks the recognition service for semantically
// matching vectors, and builds the album from the images those vectors belong
// to. No candidate above the threshold is a "no matches" outcome, not an
// error.
func (a *Albums) AutoCreate(ctx context.Context, owner, name string, public bool) (dto.AutoCreateResult, error) {
	if owner == "" {
		return dto.AutoCreateResult{}, errs.ErrNotAuthenticated
	}
	if strings.TrimSpace(name) == "" {
		return dto.AutoCreateResult{}, errs.ErrEmptyAlbumName
	}

	resp, err := a.recognizer.EmbedText(ctx, owner, name)
	if err != nil {
		return dto.AutoCreateResult{}, err
	}

	var candidates []string
	for _, match := range resp.Matches {
		if match.Score > matchScoreThreshold {
			candidates = append(candidates, match.ID)
		}
	}

	if len(candidates) == 0 {
		return dto.AutoCreateResult{Matched: 0}, nil
	}

	images, err := a.images.ListByVectorIDs(ctx, owner, candidates)
	if err != nil {
		return dto.AutoCreateResult{}, err
	}

	imageIDs := make([]string, 0, len(images))
	for _, img := range images {
		imageIDs = append(imageIDs, img.ID)
	}

	albumID, err := a.Create(ctx, owner, name, imageIDs, public)
	if err != nil {
		return dto.AutoCreateResult{}, err
	}

	return dto.AutoCreateResult{
		AlbumID: albumID,
		Matched: len(candidates),
	}, nil
}

func (a *Albums) notify(ctx context.Context, topic string) {
	if err := a.publisher.Publish(ctx, topic); err != nil {
		logger.Warn("change signal not published", "topic", topic, "err", err)
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

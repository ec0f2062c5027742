package database

import (
	"context"
	"time"

	"photovault/internal/domain/model"
)

// FeedCursor is the page position of the descending-timestamp feed: the
// store-assigned order key of the last item of the previous page.
type FeedCursor struct {
	UploadedAt time.Time
	ID         string
}

type ImageWriter interface {
	Write(ctx context.Context, image *model.Image) error
}

type ImageRetriever interface {
	GetByID(ctx context.Context, owner, id string) (*model.Image, error)
}

type ImageLister interface {
	// ListByOwner returns up to limit images ordered by uploaded_at
	// descending, starting strictly after the cursor position. A nil cursor
	// starts from the newest image.
	ListByOwner(ctx context.Context, owner string, cursor *FeedCursor, limit int) ([]model.Image, error)
	ListByIDs(ctx context.Context, owner string, ids []string) ([]model.Image, error)
	ListByVectorIDs(ctx context.Context, owner string, vectorIDs []string) ([]model.Image, error)
}

type ImageRemover interface {
	Remove(ctx context.Context, owner, id string) error
}

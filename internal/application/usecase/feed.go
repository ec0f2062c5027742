package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"photovault/internal/domain/dto"
	"photovault/internal/domain/errs"
	"photovault/internal/domain/model"
	repoDB "photovault/internal/domain/repository/database"
	"photovault/internal/domain/repository/notifier"
	"photovault/pkg/logger"
)

const defaultPageSize = 50

// Feed serves the descending-timestamp image feed grouped by calendar month,
// and live snapshots of it driven by change signals.
type Feed struct {
	lister     repoDB.ImageLister
	subscriber notifier.Subscriber
	pageSize   int
}

func NewFeed(lister repoDB.ImageLister, subscriber notifier.Subscriber, pageSize int) *Feed {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Feed{
		lister:     lister,
		subscriber: subscriber,
		pageSize:   pageSize,
	}
}

func (f *Feed) List(ctx context.Context, owner, cursor string) (dto.FeedPage, error) {
	if owner == "" {
		return dto.FeedPage{}, errs.ErrNotAuthenticated
	}

	position, err := decodeCursor(cursor)
	if err != nil {
		return dto.FeedPage{}, err
	}

	images, err := f.lister.ListByOwner(ctx, owner, position, f.pageSize)
	if err != nil {
		return dto.FeedPage{}, err
	}

	page := dto.FeedPage{Groups: GroupByMonth(images)}
	if len(images) == f.pageSize {
		page.NextCursor = encodeCursor(&images[len(images)-1])
	}

	return page, nil
}

// Watch emits a fresh first-page snapshot immediately and again on every
// change signal. The returned channel closes when ctx is done.
func (f *Feed) Watch(ctx context.Context, owner string) (<-chan dto.FeedPage, error) {
	if owner == "" {
		return nil, errs.ErrNotAuthenticated
	}

	signals, err := f.subscriber.Subscribe(ctx, "images/"+owner)
	if err != nil {
		return nil, err
	}

	out := make(chan dto.FeedPage, 1)

	go func() {
		defer close(out)

		f.emit(ctx, owner, out)

		for range signals {
			f.emit(ctx, owner, out)
		}
	}()

	return out, nil
}

func (f *Feed) emit(ctx context.Context, owner string, out chan<- dto.FeedPage) {
	page, err := f.List(ctx, owner, "")
	if err != nil {
		logger.Error("snapshot query failed", "owner", owner, "err", err)

		return
	}

	select {
	case out <- page:
	case <-ctx.Done():
	}
}

// GroupByMonth buckets images by calendar month of upload. Group keys appear
// in first-encountered order of the input and images keep their relative
// order inside each bucket; the input is never re-sorted.
func GroupByMonth(images []model.Image) []dto.MonthGroup {
	var groups []dto.MonthGroup
	index := make(map[string]int)

	for i := range images {
		key := images[i].UploadedAt.Format("January 2006")
		at, ok := index[key]
		if !ok {
			at = len(groups)
			index[key] = at
			groups = append(groups, dto.MonthGroup{Month: key})
		}
		groups[at].Images = append(groups[at].Images, toDescriptor(&images[i]))
	}

	return groups
}

func encodeCursor(image *model.Image) string {
	raw := fmt.Sprintf("%d|%s", image.UploadedAt.UnixNano(), image.ID)

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(cursor string) (*repoDB.FeedCursor, error) {
	if cursor == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("invalid cursor: %w", err)
	}

	nanos, id, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil, fmt.Errorf("invalid cursor format")
	}

	n, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cursor timestamp: %w", err)
	}

	return &repoDB.FeedCursor{
		UploadedAt: time.Unix(0, n).UTC(),
		ID:         id,
	}, nil
}

package abstraction

import (
	"context"

	"photovault/internal/domain/dto"
)

// Feeder defines the interface for the month-grouped image feed.
type Feeder interface {
	List(ctx context.Context, owner, cursor string) (dto.FeedPage, error)
	Watch(ctx context.Context, owner string) (<-chan dto.FeedPage, error)
}

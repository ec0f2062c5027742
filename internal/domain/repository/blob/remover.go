package blob

import "context"

type Remover interface {
	Remove(ctx context.Context, owner, imageID string) error
}

package blob

import (
	"context"
	"io"
)

// Uploader writes binary image content under the per-user namespace and
// returns a stable retrieval URL.
type Uploader interface {
	Upload(ctx context.Context, owner, imageID string, body io.Reader, size int64, contentType string) (string, error)
}

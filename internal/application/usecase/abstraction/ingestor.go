package abstraction

import (
	"context"
	"io"

	"photovault/internal/domain/dto"
)

// Ingestor defines the interface for committing an uploaded image.
type Ingestor interface {
	Ingest(ctx context.Context, owner, filename string, payload io.Reader) (dto.IngestResult, error)
}

package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
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

// Ingestor runs the upload workflow: blob first, metadata second, with two
// best-effort recognition calls around the metadata write. A blob left behind
// by a failed metadata write is not rolled back.
type Ingestor struct {
	uploader   blob.Uploader
	writer     repoDB.ImageWriter
	recognizer recognition.Client
	publisher  notifier.Publisher
}

func NewIngestor(uploader blob.Uploader, writer repoDB.ImageWriter, recognizer recognition.Client,
	publisher notifier.Publisher,
) *Ingestor {
	return &Ingestor{
		uploader:   uploader,
		writer:     writer,
		recognizer: recognizer,
		publisher:  publisher,
	}
}

func (i *Ingestor) Ingest(ctx context.Context, owner, filename string, payload io.Reader) (dto.IngestResult, error) {
	if owner == "" {
		return dto.IngestResult{}, errs.ErrNotAuthenticated
	}
	if payload == nil {
		return dto.IngestResult{}, errs.ErrNoPayload
	}

	data, err := io.ReadAll(payload)
	if err != nil {
		return dto.IngestResult{}, fmt.Errorf("reading payload: %w", err)
	}
	if len(data) == 0 {
		return dto.IngestResult{}, errs.ErrNoPayload
	}

	id := uuid.New().String()
	contentType := mimetype.Detect(data).String()

	url, err := i.uploader.Upload(ctx, owner, id, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		return dto.IngestResult{}, fmt.Errorf("%w: %w", errs.ErrBlobWrite, err)
	}

	// Best-effort: an unavailable embedding service must not block the
	// upload; the record simply carries no vector reference.
	vectorID, err := i.recognizer.EmbedImage(ctx, owner, filename, bytes.NewReader(data))
	if err != nil {
		logger.Warn("image embedding unavailable, storing without vector reference",
			"image", id, "err", err)
		vectorID = ""
	}

	// Same policy for labels: the record carries whatever the service could
	// derive, possibly nothing.
	labels, err := i.recognizer.DetectLabels(ctx, owner, filename, bytes.NewReader(data))
	if err != nil {
		logger.Warn("label detection unavailable, storing without labels",
			"image", id, "err", err)
		labels = nil
	}

	err = i.writer.Write(ctx, &model.Image{
		ID:          id,
		Owner:       owner,
		Name:        filename,
		URL:         url,
		Size:        int64(len(data)),
		ContentType: contentType,
		UploadedAt:  time.Now().UTC(),
		Labels:      labels,
		VectorID:    vectorID,
	})
	if err != nil {
		logger.Error("metadata write failed after blob commit, blob orphaned",
			"image", id, "owner", owner, "err", err)

		return dto.IngestResult{}, fmt.Errorf("%w: %w", errs.ErrMetadataWrite, err)
	}

	faceDetection := true
	if err := i.recognizer.DetectFaces(ctx, owner, filename, bytes.NewReader(data)); err != nil {
		logger.Warn("face detection failed", "image", id, "err", err)
		faceDetection = false
	}

	if err := i.publisher.Publish(ctx, "images/"+owner); err != nil {
		logger.Warn("change signal not published", "owner", owner, "err", err)
	}

	return dto.IngestResult{
		ID:            id,
		URL:           url,
		Size:          int64(len(data)),
		ContentType:   contentType,
		FaceDetection: faceDetection,
	}, nil
}

package recognition

import (
	"context"
	"io"

	"photovault/internal/domain/dto"
)

// Client is the boundary to the external face/embedding/vision service. All
// calls are stateless HTTP; malformed responses surface as
// errs.ErrRecognitionService.
type Client interface {
	// DetectFaces submits the image for face detection. The result feeds the
	// service's own index; nothing is returned beyond success.
	DetectFaces(ctx context.Context, userID, filename string, image io.Reader) error

	// EmbedImage returns the vector-index reference for the image.
	EmbedImage(ctx context.Context, userID, filename string, image io.Reader) (string, error)

	// DetectLabels returns descriptive labels for the image.
	DetectLabels(ctx context.Context, userID, filename string, image io.Reader) ([]string, error)

	// EmbedText returns ranked vector matches for free text.
	EmbedText(ctx context.Context, userID, text string) (dto.TextEmbedResponse, error)

	NameFace(ctx context.Context, userID, faceID, name string) error
	PersonImages(ctx context.Context, userID, name string) ([]dto.PersonImage, error)
	FaceCrop(ctx context.Context, userID, faceID string) ([]byte, string, error)
	UserFaces(ctx context.Context, userID string) ([]dto.Face, error)
}

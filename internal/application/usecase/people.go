package usecase

import (
	"context"

	"photovault/internal/domain/dto"
	"photovault/internal/domain/errs"
	"photovault/internal/domain/repository/recognition"
)

// People fronts the recognition service's person and face surface. Every call
// is scoped to the caller's user id; results never cross users.
type People struct {
	recognizer recognition.Client
}

func NewPeople(recognizer recognition.Client) *People {
	return &People{recognizer: recognizer}
}

// Search returns the images the recognition service associates with the named
// person for this owner.
func (p *People) Search(ctx context.Context, owner, name string) ([]dto.PersonImage, error) {
	if owner == "" {
		return nil, errs.ErrNotAuthenticated
	}

	return p.recognizer.PersonImages(ctx, owner, name)
}

// Faces lists the detected faces of the owner's library, named or not.
func (p *People) Faces(ctx context.Context, owner string) ([]dto.Face, error) {
	if owner == "" {
		return nil, errs.ErrNotAuthenticated
	}

	return p.recognizer.UserFaces(ctx, owner)
}

// FaceCrop returns the cropped face image bytes and their content type.
func (p *People) FaceCrop(ctx context.Context, owner, faceID string) ([]byte, string, error) {
	if owner == "" {
		return nil, "", errs.ErrNotAuthenticated
	}

	return p.recognizer.FaceCrop(ctx, owner, faceID)
}

// NameFace attaches a display name to a detected face.
func (p *People) NameFace(ctx context.Context, owner, faceID, name string) error {
	if owner == "" {
		return errs.ErrNotAuthenticated
	}

	return p.recognizer.NameFace(ctx, owner, faceID, name)
}

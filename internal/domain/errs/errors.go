// Package errs holds the sentinel errors shared across workflows. Handlers
// map them to HTTP statuses at the boundary; usecases wrap them with context.
package errs

import "errors"

var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrNoPayload            = errors.New("no payload provided")
	ErrBlobWrite            = errors.New("blob write failed")
	ErrMetadataWrite        = errors.New("metadata write failed")
	ErrRecognitionService   = errors.New("recognition service failed")
	ErrNotFound             = errors.New("not found")
	ErrEmptyAlbumName       = errors.New("album name is empty")
	ErrForeignImageReference = errors.New("image does not belong to caller")
)

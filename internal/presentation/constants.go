package presentation

const (
	AuthKey   = "Authorization"
	ReasonTag = "X-Reason"

	// UIDKey is the echo context key holding the verified subject of the
	// request's session token.
	UIDKey = "uid"

	IDParam      = "id"
	ImageIDParam = "imageId"
	AlbumIDParam = "albumId"
	FaceIDParam  = "faceId"
)

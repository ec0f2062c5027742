package dto

// Typed response shapes for the recognition service. Every endpoint decodes
// into one of these and is validated at the boundary; a payload that does not
// fit becomes errs.ErrRecognitionService instead of leaking loose fields.

type EmbedResponse struct {
	VectorID string `json:"vector_id"`
}

type VectorMatch struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

type TextEmbedResponse struct {
	Matches []VectorMatch `json:"matches"`
}

type LabelsResponse struct {
	Labels []string `json:"labels"`
}

type Face struct {
	FaceID   string `json:"face_id"`
	Name     string `json:"name,omitempty"`
	ImageRef string `json:"image_ref"`
}

type FacesResponse struct {
	Faces []Face `json:"faces"`
}

type PersonImage struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url"`
}

type PersonImagesResponse struct {
	Images []PersonImage `json:"images"`
}

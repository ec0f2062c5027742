package model

import "time"

// Image is the metadata record for one uploaded photo. The binary payload
// lives in blob storage under users/{owner}/images/{id}; URL is the stable
// retrieval reference returned at upload time.
type Image struct {
	ID          string    `bson:"_id"`
	Owner       string    `bson:"owner"`
	Name        string    `bson:"name"`
	URL         string    `bson:"url"`
	Size        int64     `bson:"size"`
	ContentType string    `bson:"content_type"`
	UploadedAt  time.Time `bson:"uploaded_at"`
	Labels      []string  `bson:"labels"`
	VectorID    string    `bson:"vector_id"` // empty when embedding was unavailable
}

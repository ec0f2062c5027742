package dto

import "time"

// ImageDescriptor is the wire form of a stored image.
type ImageDescriptor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// IngestResult is returned by the upload workflow. FaceDetection reports
// whether the best-effort face-detection call succeeded; a false value does
// not mean the upload failed.
type IngestResult struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Size          int64  `json:"size"`
	ContentType   string `json:"content_type"`
	FaceDetection bool   `json:"face_detection"`
}

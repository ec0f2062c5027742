// Package recognition is the HTTP client for the external face, embedding and
// vision service. Every endpoint decodes into a typed response; anything that
// does not fit the expected shape becomes errs.ErrRecognitionService.
package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"photovault/internal/domain/dto"
	"photovault/internal/domain/errs"
	"photovault/pkg/logger"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		},
	}
}

func (c *Client) DetectFaces(ctx context.Context, userID, filename string, image io.Reader) error {
	path := fmt.Sprintf("/upload-image/%s", url.PathEscape(userID))
	_, err := c.postMultipart(ctx, path, filename, image)

	return err
}

func (c *Client) EmbedImage(ctx context.Context, userID, filename string, image io.Reader) (string, error) {
	path := fmt.Sprintf("/image-embed/%s", url.PathEscape(userID))
	body, err := c.postMultipart(ctx, path, filename, image)
	if err != nil {
		return "", err
	}

	var resp dto.EmbedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: malformed embed response: %w", errs.ErrRecognitionService, err)
	}
	if resp.VectorID == "" {
		return "", fmt.Errorf("%w: embed response missing vector_id", errs.ErrRecognitionService)
	}

	return resp.VectorID, nil
}

func (c *Client) DetectLabels(ctx context.Context, userID, filename string, image io.Reader) ([]string, error) {
	path := fmt.Sprintf("/detect-labels/%s", url.PathEscape(userID))
	body, err := c.postMultipart(ctx, path, filename, image)
	if err != nil {
		return nil, err
	}

	var resp dto.LabelsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed detect-labels response: %w", errs.ErrRecognitionService, err)
	}

	return resp.Labels, nil
}

func (c *Client) EmbedText(ctx context.Context, userID, text string) (dto.TextEmbedResponse, error) {
	path := fmt.Sprintf("/text-embed/%s/%s", url.PathEscape(userID), url.PathEscape(text))

	body, err := c.do(ctx, http.MethodPost, path, "", nil)
	if err != nil {
		return dto.TextEmbedResponse{}, err
	}

	var resp dto.TextEmbedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return dto.TextEmbedResponse{}, fmt.Errorf("%w: malformed text-embed response: %w",
			errs.ErrRecognitionService, err)
	}
	for _, m := range resp.Matches {
		if m.ID == "" {
			return dto.TextEmbedResponse{}, fmt.Errorf("%w: text-embed match without id",
				errs.ErrRecognitionService)
		}
	}

	return resp, nil
}

func (c *Client) NameFace(ctx context.Context, userID, faceID, name string) error {
	path := fmt.Sprintf("/name-face/%s/%s", url.PathEscape(userID), url.PathEscape(faceID))

	payload, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(payload))

	return err
}

func (c *Client) PersonImages(ctx context.Context, userID, name string) ([]dto.PersonImage, error) {
	path := fmt.Sprintf("/person-images/%s/%s", url.PathEscape(userID), url.PathEscape(name))

	body, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var resp dto.PersonImagesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed person-images response: %w", errs.ErrRecognitionService, err)
	}

	return resp.Images, nil
}

func (c *Client) FaceCrop(ctx context.Context, userID, faceID string) ([]byte, string, error) {
	path := fmt.Sprintf("/face-crop/%s/%s", url.PathEscape(userID), url.PathEscape(faceID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", errs.ErrRecognitionService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("%w: face-crop returned status %d", errs.ErrRecognitionService, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", errs.ErrRecognitionService, err)
	}

	return body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) UserFaces(ctx context.Context, userID string) ([]dto.Face, error) {
	path := fmt.Sprintf("/user-faces/%s", url.PathEscape(userID))

	body, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var resp dto.FacesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed user-faces response: %w", errs.ErrRecognitionService, err)
	}
	for _, f := range resp.Faces {
		if f.FaceID == "" {
			return nil, fmt.Errorf("%w: face without face_id", errs.ErrRecognitionService)
		}
	}

	return resp.Faces, nil
}

func (c *Client) postMultipart(ctx context.Context, path, filename string, image io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	return c.do(ctx, http.MethodPost, path, writer.FormDataContentType(), &buf)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	logger.Debug("recognition request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrRecognitionService, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrRecognitionService, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned status %d", errs.ErrRecognitionService, path, resp.StatusCode)
	}

	return raw, nil
}

package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"github.com/luminasalon/backend/internal/storage"
)

// MediaService uploads images to object storage on behalf of the admin
// forms. Only the resulting URL is ever persisted in a document.
type MediaService struct {
	uploader storage.Uploader
	logger   *logrus.Logger
}

// NewMediaService creates a new MediaService
func NewMediaService(uploader storage.Uploader, logger *logrus.Logger) *MediaService {
	return &MediaService{uploader: uploader, logger: logger}
}

// UploadResult carries the stored object URLs back to the form
type UploadResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// Upload stores an image and returns its public URL
func (s *MediaService) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*UploadResult, error) {
	if !storage.IsAllowedImageType(contentType) {
		return nil, fmt.Errorf("unsupported image type %q", contentType)
	}

	url, err := s.uploader.Upload(ctx, folder, filename, contentType, data)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"folder": folder,
		"bytes":  len(data),
		"url":    url,
	}).Info("Image uploaded")
	return &UploadResult{URL: url}, nil
}

// UploadGalleryImage stores a gallery image plus a 200px thumbnail for the
// public grid.
func (s *MediaService) UploadGalleryImage(ctx context.Context, filename, contentType string, data []byte) (*UploadResult, error) {
	result, err := s.Upload(ctx, "gallery", filename, contentType, data)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	thumbnail := imaging.Resize(img, 200, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumbnail, imaging.JPEG); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	// Thumbnails live under gallery/thumbnails/ next to the originals,
	// always re-encoded as JPEG.
	base := path.Base(result.URL)
	base = strings.TrimSuffix(base, path.Ext(base)) + ".jpg"
	key := storage.ThumbnailKey(path.Join("gallery", base))

	thumbURL, err := s.uploader.UploadKey(ctx, key, "image/jpeg", buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to store thumbnail: %w", err)
	}

	result.ThumbnailURL = thumbURL
	return result, nil
}

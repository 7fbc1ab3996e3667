package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/luminasalon/backend/internal/config"
)

// Allowed image MIME types for uploads
var imageMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// Uploader stores image blobs and returns their public URLs. Documents only
// ever persist the URL, never the bytes.
type Uploader interface {
	Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error)
	UploadKey(ctx context.Context, objectKey, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

// GCSUploader implements Uploader on a Google Cloud Storage bucket
type GCSUploader struct {
	cfg config.StorageConfig
}

// NewGCSUploader creates an uploader for the configured bucket
func NewGCSUploader(cfg config.StorageConfig) *GCSUploader {
	return &GCSUploader{cfg: cfg}
}

// client builds a storage client, preferring ADC and falling back to the
// explicit credentials JSON from config.
func (u *GCSUploader) client(ctx context.Context) (*storage.Client, error) {
	if strings.TrimSpace(u.cfg.CredentialsJSON) != "" {
		return storage.NewClient(ctx, option.WithCredentialsJSON([]byte(u.cfg.CredentialsJSON)))
	}
	return storage.NewClient(ctx)
}

// Upload stores data under <folder>/<uuid><ext> and returns the public URL
func (u *GCSUploader) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
	ext, ok := imageMimeTypes[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}
	if e := strings.ToLower(filepath.Ext(filename)); e != "" {
		ext = e
	}
	if u.cfg.MaxUploadBytes > 0 && int64(len(data)) > u.cfg.MaxUploadBytes {
		return "", fmt.Errorf("file size exceeds %d byte limit", u.cfg.MaxUploadBytes)
	}

	objectKey := path.Join(sanitizeSegment(folder), uuid.New().String()+ext)
	return u.UploadKey(ctx, objectKey, contentType, data)
}

// UploadKey stores data under an exact object key and returns the public URL
func (u *GCSUploader) UploadKey(ctx context.Context, objectKey, contentType string, data []byte) (string, error) {
	if u.cfg.Bucket == "" {
		return "", fmt.Errorf("storage bucket is not configured")
	}

	client, err := u.client(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	wc := client.Bucket(u.cfg.Bucket).Object(objectKey).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		return "", fmt.Errorf("failed to write object %s: %w", objectKey, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s: %w", objectKey, err)
	}

	return BuildObjectURL(u.cfg, objectKey), nil
}

// Delete removes the object behind a public URL. Unknown URLs and already
// deleted objects are ignored.
func (u *GCSUploader) Delete(ctx context.Context, publicURL string) error {
	objectKey := ExtractObjectKey(u.cfg, publicURL)
	if objectKey == "" {
		return nil
	}

	client, err := u.client(ctx)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	if err := client.Bucket(u.cfg.Bucket).Object(objectKey).Delete(ctx); err != nil {
		if err == storage.ErrObjectNotExist {
			return nil
		}
		return err
	}
	return nil
}

// BuildObjectURL returns the public URL for an object key
func BuildObjectURL(cfg config.StorageConfig, objectKey string) string {
	base := strings.TrimSpace(cfg.PublicBaseURL)
	if base != "" {
		return strings.TrimRight(base, "/") + "/" + objectKey
	}
	return "https://storage.googleapis.com/" + cfg.Bucket + "/" + objectKey
}

// ExtractObjectKey recovers the object key from a public URL produced by
// BuildObjectURL. Returns "" for URLs outside the configured bucket.
func ExtractObjectKey(cfg config.StorageConfig, rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	if base := strings.TrimSpace(cfg.PublicBaseURL); base != "" {
		prefix := strings.TrimRight(base, "/") + "/"
		if strings.HasPrefix(rawURL, prefix) {
			return strings.TrimPrefix(rawURL, prefix)
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if parsed.Host == "storage.googleapis.com" {
		p := strings.TrimPrefix(parsed.Path, "/")
		parts := strings.SplitN(p, "/", 2)
		if len(parts) == 2 && parts[0] == cfg.Bucket {
			return parts[1]
		}
	}
	return ""
}

// ThumbnailKey derives the thumbnail object key for a gallery image
func ThumbnailKey(objectKey string) string {
	dir := path.Dir(objectKey)
	filename := path.Base(objectKey)
	return path.Join(dir, "thumbnails", filename)
}

// IsAllowedImageType reports whether a MIME type is accepted for upload
func IsAllowedImageType(contentType string) bool {
	_, ok := imageMimeTypes[contentType]
	return ok
}

func sanitizeSegment(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	input = strings.ReplaceAll(input, " ", "_")
	var out strings.Builder
	for _, r := range input {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			out.WriteRune(r)
		}
	}
	if out.Len() == 0 {
		return "uploads"
	}
	return out.String()
}

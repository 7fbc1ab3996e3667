package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminasalon/backend/internal/config"
)

func TestBuildObjectURL(t *testing.T) {
	cfg := config.StorageConfig{Bucket: "lumina-media"}
	assert.Equal(t,
		"https://storage.googleapis.com/lumina-media/services/a.jpg",
		BuildObjectURL(cfg, "services/a.jpg"))

	cfg.PublicBaseURL = "https://cdn.luminasalon.example/"
	assert.Equal(t,
		"https://cdn.luminasalon.example/services/a.jpg",
		BuildObjectURL(cfg, "services/a.jpg"))
}

func TestExtractObjectKey(t *testing.T) {
	cfg := config.StorageConfig{Bucket: "lumina-media"}

	key := ExtractObjectKey(cfg, "https://storage.googleapis.com/lumina-media/gallery/b.png")
	assert.Equal(t, "gallery/b.png", key)

	// Other buckets and foreign URLs yield nothing
	assert.Empty(t, ExtractObjectKey(cfg, "https://storage.googleapis.com/other-bucket/x.png"))
	assert.Empty(t, ExtractObjectKey(cfg, "https://example.com/img.png"))
	assert.Empty(t, ExtractObjectKey(cfg, ""))

	cfg.PublicBaseURL = "https://cdn.luminasalon.example"
	assert.Equal(t, "gallery/b.png", ExtractObjectKey(cfg, "https://cdn.luminasalon.example/gallery/b.png"))
}

func TestExtractObjectKey_RoundTrip(t *testing.T) {
	cfg := config.StorageConfig{Bucket: "lumina-media"}
	url := BuildObjectURL(cfg, "gallery/photo.jpg")
	assert.Equal(t, "gallery/photo.jpg", ExtractObjectKey(cfg, url))
}

func TestThumbnailKey(t *testing.T) {
	assert.Equal(t, "gallery/thumbnails/b.png", ThumbnailKey("gallery/b.png"))
}

func TestIsAllowedImageType(t *testing.T) {
	assert.True(t, IsAllowedImageType("image/jpeg"))
	assert.True(t, IsAllowedImageType("image/png"))
	assert.False(t, IsAllowedImageType("image/gif"))
	assert.False(t, IsAllowedImageType("application/pdf"))
	assert.False(t, IsAllowedImageType(""))
}

func TestSanitizeSegment(t *testing.T) {
	assert.Equal(t, "gallery", sanitizeSegment("Gallery"))
	assert.Equal(t, "staff_photos", sanitizeSegment("Staff Photos"))
	assert.Equal(t, "uploads", sanitizeSegment("///"))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSectionJSON_Hero(t *testing.T) {
	raw := []byte(`{"title": "Welcome to Lumina", "subtitle": "Hair and beauty", "cta_text": "Book now"}`)

	payload, err := DecodeSectionJSON(SectionHero, raw)
	require.NoError(t, err)

	hero, ok := payload.(*HeroContent)
	require.True(t, ok)
	assert.Equal(t, "Welcome to Lumina", hero.Title)
	assert.Equal(t, SectionHero, hero.SectionName())
}

func TestDecodeSectionJSON_UnknownSection(t *testing.T) {
	_, err := DecodeSectionJSON("popup-banner", []byte(`{}`))
	assert.Error(t, err)
}

func TestDecodeSectionJSON_UnknownFieldRejected(t *testing.T) {
	raw := []byte(`{"title": "Hi", "surprise": true}`)
	_, err := DecodeSectionJSON(SectionHero, raw)
	assert.Error(t, err)
}

func TestDecodeSectionJSON_ValidationFailure(t *testing.T) {
	// Hero requires a title
	_, err := DecodeSectionJSON(SectionHero, []byte(`{"subtitle": "no title"}`))
	assert.Error(t, err)
}

func TestDecodeSectionJSON_Gallery(t *testing.T) {
	raw := []byte(`{"images": [{"url": "https://cdn.example/img.jpg", "caption": "Salon floor"}]}`)

	payload, err := DecodeSectionJSON(SectionGallery, raw)
	require.NoError(t, err)

	gallery, ok := payload.(*GalleryContent)
	require.True(t, ok)
	require.Len(t, gallery.Images, 1)
	assert.Equal(t, "https://cdn.example/img.jpg", gallery.Images[0].URL)
}

func TestEmptySection(t *testing.T) {
	for _, section := range KnownSections() {
		payload, err := EmptySection(section)
		require.NoError(t, err, section)
		assert.Equal(t, section, payload.SectionName())
	}

	_, err := EmptySection("nope")
	assert.Error(t, err)
}

func TestKnownSections(t *testing.T) {
	sections := KnownSections()
	assert.Contains(t, sections, SectionHero)
	assert.Contains(t, sections, SectionContact)
	assert.Len(t, sections, 8)
}

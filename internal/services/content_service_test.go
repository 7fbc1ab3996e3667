package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/luminasalon/backend/internal/database"
	"github.com/luminasalon/backend/internal/models"
)

// fakeContentStore stores section payloads as marshalled bson, the same
// shape the real repository persists.
type fakeContentStore struct {
	docs map[string]*models.ContentDocument
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{docs: map[string]*models.ContentDocument{}}
}

func (f *fakeContentStore) Get(_ context.Context, section string) (*models.ContentDocument, error) {
	if doc, ok := f.docs[section]; ok {
		return doc, nil
	}
	return nil, database.ErrNotFound
}

func (f *fakeContentStore) Upsert(_ context.Context, payload models.SectionPayload) error {
	raw, err := bson.Marshal(payload)
	if err != nil {
		return err
	}
	f.docs[payload.SectionName()] = &models.ContentDocument{
		Section: payload.SectionName(),
		Data:    raw,
	}
	return nil
}

func TestSaveAndGetSection(t *testing.T) {
	store := newFakeContentStore()
	svc := NewContentService(store, testLogger())

	saved, err := svc.SaveSection(context.Background(), models.SectionHero,
		[]byte(`{"title": "Welcome to Lumina", "cta_text": "Book now"}`))
	require.NoError(t, err)
	assert.Equal(t, models.SectionHero, saved.SectionName())

	got, err := svc.GetSection(context.Background(), models.SectionHero)
	require.NoError(t, err)

	hero, ok := got.(*models.HeroContent)
	require.True(t, ok)
	assert.Equal(t, "Welcome to Lumina", hero.Title)
	assert.Equal(t, "Book now", hero.CTAText)
}

func TestGetSection_UnsavedSectionIsEmpty(t *testing.T) {
	svc := NewContentService(newFakeContentStore(), testLogger())

	payload, err := svc.GetSection(context.Background(), models.SectionFAQs)
	require.NoError(t, err)

	faqs, ok := payload.(*models.FAQContent)
	require.True(t, ok)
	assert.Empty(t, faqs.Items)
}

func TestGetSection_UnknownSection(t *testing.T) {
	svc := NewContentService(newFakeContentStore(), testLogger())

	_, err := svc.GetSection(context.Background(), "carousel")
	assert.Error(t, err)
}

func TestSaveSection_RejectsUnknownFields(t *testing.T) {
	store := newFakeContentStore()
	svc := NewContentService(store, testLogger())

	_, err := svc.SaveSection(context.Background(), models.SectionHero,
		[]byte(`{"title": "Hi", "bogus": 1}`))
	assert.Error(t, err)
	assert.Empty(t, store.docs, "invalid payloads never reach the store")
}

func TestSEOData(t *testing.T) {
	store := newFakeContentStore()
	svc := NewContentService(store, testLogger())

	_, err := svc.SaveSection(context.Background(), models.SectionHero,
		[]byte(`{"title": "Lumina Salon", "subtitle": "Hair and beauty in Colombo"}`))
	require.NoError(t, err)
	_, err = svc.SaveSection(context.Background(), models.SectionContact,
		[]byte(`{"business_name": "Lumina Salon", "phone": "+94 11 234 5678", "address": "12 Flower Road, Colombo"}`))
	require.NoError(t, err)

	data, err := svc.SEOData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://schema.org", data["@context"])
	assert.Equal(t, "HairSalon", data["@type"])
	assert.Equal(t, "Lumina Salon", data["name"])
	assert.Equal(t, "+94 11 234 5678", data["telephone"])
	assert.Equal(t, "12 Flower Road, Colombo", data["address"])
}

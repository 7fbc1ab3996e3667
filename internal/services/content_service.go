package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/luminasalon/backend/internal/database"
	"github.com/luminasalon/backend/internal/models"
)

// ContentStore is the document store surface used for content sections
type ContentStore interface {
	Get(ctx context.Context, section string) (*models.ContentDocument, error)
	Upsert(ctx context.Context, payload models.SectionPayload) error
}

// ContentService manages the public site's editable content sections
type ContentService struct {
	content ContentStore
	logger  *logrus.Logger
}

// NewContentService creates a new ContentService
func NewContentService(content ContentStore, logger *logrus.Logger) *ContentService {
	return &ContentService{content: content, logger: logger}
}

// GetSection returns the typed payload for a section. A section that has
// never been saved yields the zero payload for its type, so fresh installs
// render empty sections instead of 404s.
func (s *ContentService) GetSection(ctx context.Context, section string) (models.SectionPayload, error) {
	doc, err := s.content.Get(ctx, section)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return models.EmptySection(section)
		}
		return nil, err
	}
	return models.DecodeSectionBSON(section, doc.Data)
}

// SaveSection decodes and validates a JSON payload for the named section,
// then upserts it. Last write wins; there is no optimistic concurrency.
func (s *ContentService) SaveSection(ctx context.Context, section string, raw []byte) (models.SectionPayload, error) {
	payload, err := models.DecodeSectionJSON(section, raw)
	if err != nil {
		return nil, err
	}

	if err := s.content.Upsert(ctx, payload); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"section": section}).Info("Content section saved")
	return payload, nil
}

// SEOData builds JSON-LD structured data for the public site from the
// contact and hero sections. Missing sections yield a minimal document.
func (s *ContentService) SEOData(ctx context.Context) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "HairSalon",
	}

	if payload, err := s.GetSection(ctx, models.SectionContact); err == nil {
		if contact, ok := payload.(*models.ContactContent); ok && contact.BusinessName != "" {
			data["name"] = contact.BusinessName
			if contact.Address != "" {
				data["address"] = contact.Address
			}
			if contact.Phone != "" {
				data["telephone"] = contact.Phone
			}
			if contact.Email != "" {
				data["email"] = contact.Email
			}
			if contact.Website != "" {
				data["url"] = contact.Website
			}
			if contact.Hours != "" {
				data["openingHours"] = contact.Hours
			}
		}
	}

	if payload, err := s.GetSection(ctx, models.SectionHero); err == nil {
		if hero, ok := payload.(*models.HeroContent); ok {
			if hero.Tagline != "" {
				data["slogan"] = hero.Tagline
			}
			if hero.ImageURL != "" {
				data["image"] = hero.ImageURL
			}
		}
	}

	return data, nil
}

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Public site section names. Each section is one typed document in the
// content collection, keyed by section name.
const (
	SectionHero         = "hero"
	SectionTeam         = "team"
	SectionGallery      = "gallery"
	SectionTestimonials = "testimonials"
	SectionFAQs         = "faqs"
	SectionBlog         = "blog"
	SectionOffers       = "offers"
	SectionContact      = "contact"
)

// SectionPayload is implemented by every typed content section
type SectionPayload interface {
	SectionName() string
	Validate() error
}

// ContentDocument is the stored shape of a content section. Data holds the
// typed section payload; readers decode it with DecodeSectionBSON.
type ContentDocument struct {
	Section   string    `json:"section" bson:"section"`
	Data      bson.Raw  `json:"-" bson:"data"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// HeroContent is the landing banner
type HeroContent struct {
	Title    string `json:"title" bson:"title"`
	Subtitle string `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Tagline  string `json:"tagline,omitempty" bson:"tagline,omitempty"`
	ImageURL string `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CTAText  string `json:"cta_text,omitempty" bson:"cta_text,omitempty"`
	CTALink  string `json:"cta_link,omitempty" bson:"cta_link,omitempty"`
}

func (HeroContent) SectionName() string { return SectionHero }

func (h HeroContent) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// TeamMember is one entry in the team section
type TeamMember struct {
	Name     string `json:"name" bson:"name"`
	Role     string `json:"role,omitempty" bson:"role,omitempty"`
	ImageURL string `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// TeamContent lists the salon team
type TeamContent struct {
	Heading string       `json:"heading,omitempty" bson:"heading,omitempty"`
	Members []TeamMember `json:"members" bson:"members"`
}

func (TeamContent) SectionName() string { return SectionTeam }

func (t TeamContent) Validate() error {
	for i, m := range t.Members {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("member %d: name is required", i+1)
		}
	}
	return nil
}

// GalleryImage is one image in the gallery section
type GalleryImage struct {
	URL          string `json:"url" bson:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty" bson:"thumbnail_url,omitempty"`
	Caption      string `json:"caption,omitempty" bson:"caption,omitempty"`
}

// GalleryContent holds the public gallery
type GalleryContent struct {
	Heading string         `json:"heading,omitempty" bson:"heading,omitempty"`
	Images  []GalleryImage `json:"images" bson:"images"`
}

func (GalleryContent) SectionName() string { return SectionGallery }

func (g GalleryContent) Validate() error {
	for i, img := range g.Images {
		if strings.TrimSpace(img.URL) == "" {
			return fmt.Errorf("image %d: url is required", i+1)
		}
	}
	return nil
}

// Testimonial is one customer quote
type Testimonial struct {
	Author   string  `json:"author" bson:"author"`
	Quote    string  `json:"quote" bson:"quote"`
	Rating   float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	ImageURL string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// TestimonialsContent holds customer testimonials
type TestimonialsContent struct {
	Heading string        `json:"heading,omitempty" bson:"heading,omitempty"`
	Items   []Testimonial `json:"items" bson:"items"`
}

func (TestimonialsContent) SectionName() string { return SectionTestimonials }

func (t TestimonialsContent) Validate() error {
	for i, item := range t.Items {
		if strings.TrimSpace(item.Author) == "" {
			return fmt.Errorf("testimonial %d: author is required", i+1)
		}
		if strings.TrimSpace(item.Quote) == "" {
			return fmt.Errorf("testimonial %d: quote is required", i+1)
		}
		if item.Rating < 0 || item.Rating > 5 {
			return fmt.Errorf("testimonial %d: rating must be between 0 and 5", i+1)
		}
	}
	return nil
}

// FAQ is a single question/answer pair
type FAQ struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// FAQContent holds the FAQs section
type FAQContent struct {
	Heading string `json:"heading,omitempty" bson:"heading,omitempty"`
	Items   []FAQ  `json:"items" bson:"items"`
}

func (FAQContent) SectionName() string { return SectionFAQs }

func (f FAQContent) Validate() error {
	for i, item := range f.Items {
		if strings.TrimSpace(item.Question) == "" {
			return fmt.Errorf("faq %d: question is required", i+1)
		}
		if strings.TrimSpace(item.Answer) == "" {
			return fmt.Errorf("faq %d: answer is required", i+1)
		}
	}
	return nil
}

// BlogPost is one post in the blog section
type BlogPost struct {
	Title       string    `json:"title" bson:"title"`
	Summary     string    `json:"summary,omitempty" bson:"summary,omitempty"`
	Body        string    `json:"body,omitempty" bson:"body,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty" bson:"published_at,omitempty"`
}

// BlogContent holds the blog section
type BlogContent struct {
	Heading string     `json:"heading,omitempty" bson:"heading,omitempty"`
	Posts   []BlogPost `json:"posts" bson:"posts"`
}

func (BlogContent) SectionName() string { return SectionBlog }

func (b BlogContent) Validate() error {
	for i, post := range b.Posts {
		if strings.TrimSpace(post.Title) == "" {
			return fmt.Errorf("post %d: title is required", i+1)
		}
	}
	return nil
}

// Offer is one promotion in the offers section
type Offer struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	ValidUntil  string `json:"valid_until,omitempty" bson:"valid_until,omitempty"`
	ImageURL    string `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// OffersContent holds current promotions
type OffersContent struct {
	Heading string  `json:"heading,omitempty" bson:"heading,omitempty"`
	Items   []Offer `json:"items" bson:"items"`
}

func (OffersContent) SectionName() string { return SectionOffers }

func (o OffersContent) Validate() error {
	for i, item := range o.Items {
		if strings.TrimSpace(item.Title) == "" {
			return fmt.Errorf("offer %d: title is required", i+1)
		}
	}
	return nil
}

// ContactContent holds business contact details, also used to build the
// public site's structured data
type ContactContent struct {
	BusinessName string `json:"business_name" bson:"business_name"`
	Address      string `json:"address,omitempty" bson:"address,omitempty"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"`
	Hours        string `json:"hours,omitempty" bson:"hours,omitempty"`
	Website      string `json:"website,omitempty" bson:"website,omitempty"`
	MapURL       string `json:"map_url,omitempty" bson:"map_url,omitempty"`
}

func (ContactContent) SectionName() string { return SectionContact }

func (c ContactContent) Validate() error {
	if strings.TrimSpace(c.BusinessName) == "" {
		return fmt.Errorf("business name is required")
	}
	return nil
}

// newSectionPayload returns a zero value of the typed payload for a section
func newSectionPayload(section string) (SectionPayload, error) {
	switch section {
	case SectionHero:
		return &HeroContent{}, nil
	case SectionTeam:
		return &TeamContent{}, nil
	case SectionGallery:
		return &GalleryContent{}, nil
	case SectionTestimonials:
		return &TestimonialsContent{}, nil
	case SectionFAQs:
		return &FAQContent{}, nil
	case SectionBlog:
		return &BlogContent{}, nil
	case SectionOffers:
		return &OffersContent{}, nil
	case SectionContact:
		return &ContactContent{}, nil
	default:
		return nil, fmt.Errorf("unknown content section %q", section)
	}
}

// EmptySection returns the zero payload for a known section name
func EmptySection(section string) (SectionPayload, error) {
	return newSectionPayload(section)
}

// DecodeSectionJSON decodes a JSON request body into the typed payload for
// the named section and validates it.
func DecodeSectionJSON(section string, raw []byte) (SectionPayload, error) {
	payload, err := newSectionPayload(section)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(payload); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", section, err)
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return payload, nil
}

// DecodeSectionBSON decodes a stored content document's data into its
// typed payload.
func DecodeSectionBSON(section string, raw bson.Raw) (SectionPayload, error) {
	payload, err := newSectionPayload(section)
	if err != nil {
		return nil, err
	}
	if err := bson.Unmarshal(raw, payload); err != nil {
		return nil, fmt.Errorf("corrupt %s document: %w", section, err)
	}
	return payload, nil
}

// KnownSections lists every valid section name in route order
func KnownSections() []string {
	return []string{
		SectionHero, SectionTeam, SectionGallery, SectionTestimonials,
		SectionFAQs, SectionBlog, SectionOffers, SectionContact,
	}
}

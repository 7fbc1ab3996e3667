package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/luminasalon/backend/internal/models"
	"github.com/luminasalon/backend/internal/storage"
)

// ServiceStore is the document store surface used for salon services
type ServiceStore interface {
	Create(ctx context.Context, service *models.Service) (string, error)
	FindByID(ctx context.Context, id string) (*models.Service, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*models.Service, error)
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

// ProductStore is the document store surface used for inventory products
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) (string, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindAll(ctx context.Context) ([]*models.Product, error)
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

// CatalogService manages salon services and retail products
type CatalogService struct {
	services ServiceStore
	products ProductStore
	uploader storage.Uploader
	logger   *logrus.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(services ServiceStore, products ProductStore, uploader storage.Uploader, logger *logrus.Logger) *CatalogService {
	return &CatalogService{
		services: services,
		products: products,
		uploader: uploader,
		logger:   logger,
	}
}

// ServiceInput carries create/update fields for a salon service. Nil
// pointers are omitted from partial updates.
type ServiceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *string  `json:"price"`
	Category    *string  `json:"category"`
	Rating      *float64 `json:"rating"`
	Featured    *bool    `json:"featured"`
	ImageURL    *string  `json:"image_url"`
	IsActive    *bool    `json:"is_active"`
}

// ProductInput carries create/update fields for a product
type ProductInput struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	ImageURL *string  `json:"image_url"`
}

// ListServices returns all services for the admin panel
func (s *CatalogService) ListServices(ctx context.Context) ([]*models.Service, error) {
	return s.services.FindAll(ctx, false)
}

// ListActiveServices returns active services in public site order
func (s *CatalogService) ListActiveServices(ctx context.Context) ([]*models.Service, error) {
	return s.services.FindAll(ctx, true)
}

// GetService returns one service by id
func (s *CatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.services.FindByID(ctx, id)
}

// CreateService validates the input and creates a service document.
// Validation failures happen before any store call.
func (s *CatalogService) CreateService(ctx context.Context, in ServiceInput) (string, error) {
	service := &models.Service{
		Name:     strPtr(in.Name),
		Price:    strPtr(in.Price),
		IsActive: true,
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Category != nil {
		service.Category = *in.Category
	}
	if in.Rating != nil {
		service.Rating = *in.Rating
	}
	if in.Featured != nil {
		service.Featured = *in.Featured
	}
	if in.ImageURL != nil {
		service.ImageURL = *in.ImageURL
	}
	if in.IsActive != nil {
		service.IsActive = *in.IsActive
	}

	if err := service.Validate(); err != nil {
		return "", err
	}

	id, err := s.services.Create(ctx, service)
	if err != nil {
		return "", err
	}

	s.logger.WithFields(logrus.Fields{"service_id": id, "name": service.Name}).Info("Service created")
	return id, nil
}

// UpdateService applies a partial update to a service
func (s *CatalogService) UpdateService(ctx context.Context, id string, in ServiceInput) error {
	update := bson.M{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return fmt.Errorf("name cannot be empty")
		}
		update["name"] = *in.Name
	}
	if in.Price != nil {
		if _, err := strconv.ParseFloat(strings.TrimSpace(*in.Price), 64); err != nil {
			return fmt.Errorf("price must be numeric")
		}
		update["price"] = *in.Price
	}
	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			return fmt.Errorf("rating must be between 0 and 5")
		}
		update["rating"] = *in.Rating
	}
	if in.Description != nil {
		update["description"] = *in.Description
	}
	if in.Category != nil {
		update["category"] = *in.Category
	}
	if in.Featured != nil {
		update["featured"] = *in.Featured
	}
	if in.ImageURL != nil {
		update["image_url"] = *in.ImageURL
	}
	if in.IsActive != nil {
		update["is_active"] = *in.IsActive
	}
	if len(update) == 0 {
		return fmt.Errorf("no fields to update")
	}

	return s.services.Update(ctx, id, update)
}

// DeleteService removes a service and best-effort deletes its image.
// Existing invoices referencing the service are untouched.
func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	service, err := s.services.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.services.Delete(ctx, id); err != nil {
		return err
	}

	if service.ImageURL != "" && s.uploader != nil {
		if err := s.uploader.Delete(ctx, service.ImageURL); err != nil {
			s.logger.WithFields(logrus.Fields{
				"service_id": id,
				"error":      err.Error(),
			}).Warn("Failed to delete service image from storage")
		}
	}
	return nil
}

// ListProducts returns all products
func (s *CatalogService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.products.FindAll(ctx)
}

// GetProduct returns one product by id
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.products.FindByID(ctx, id)
}

// CreateProduct validates the input and creates a product document
func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (string, error) {
	product := &models.Product{
		Name: strPtr(in.Name),
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}

	if err := product.Validate(); err != nil {
		return "", err
	}

	id, err := s.products.Create(ctx, product)
	if err != nil {
		return "", err
	}

	s.logger.WithFields(logrus.Fields{"product_id": id, "name": product.Name}).Info("Product created")
	return id, nil
}

// UpdateProduct applies a partial update to a product
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ProductInput) error {
	update := bson.M{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return fmt.Errorf("name cannot be empty")
		}
		update["name"] = *in.Name
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return fmt.Errorf("price must be greater than zero")
		}
		update["price"] = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return fmt.Errorf("stock cannot be negative")
		}
		update["stock"] = *in.Stock
	}
	if in.ImageURL != nil {
		update["image_url"] = *in.ImageURL
	}
	if len(update) == 0 {
		return fmt.Errorf("no fields to update")
	}

	return s.products.Update(ctx, id, update)
}

// DeleteProduct removes a product and best-effort deletes its image
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	if product.ImageURL != "" && s.uploader != nil {
		if err := s.uploader.Delete(ctx, product.ImageURL); err != nil {
			s.logger.WithFields(logrus.Fields{
				"product_id": id,
				"error":      err.Error(),
			}).Warn("Failed to delete product image from storage")
		}
	}
	return nil
}

func strPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

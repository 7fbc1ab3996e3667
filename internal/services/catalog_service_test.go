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

// fakeServiceStore holds one service in memory
type fakeServiceStore struct {
	service      *models.Service
	createCalled int
	updates      []bson.M
	deleted      []string
}

func (f *fakeServiceStore) Create(_ context.Context, s *models.Service) (string, error) {
	f.createCalled++
	f.service = s
	return "svc-1", nil
}

func (f *fakeServiceStore) FindByID(_ context.Context, id string) (*models.Service, error) {
	if f.service == nil {
		return nil, database.ErrNotFound
	}
	return f.service, nil
}

func (f *fakeServiceStore) FindAll(_ context.Context, activeOnly bool) ([]*models.Service, error) {
	if f.service == nil {
		return nil, nil
	}
	if activeOnly && !f.service.IsActive {
		return nil, nil
	}
	return []*models.Service{f.service}, nil
}

func (f *fakeServiceStore) Update(_ context.Context, id string, update bson.M) error {
	f.updates = append(f.updates, update)
	return nil
}

func (f *fakeServiceStore) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	f.service = nil
	return nil
}

type fakeProductStore struct {
	product      *models.Product
	createCalled int
	updates      []bson.M
}

func (f *fakeProductStore) Create(_ context.Context, p *models.Product) (string, error) {
	f.createCalled++
	f.product = p
	return "prod-1", nil
}

func (f *fakeProductStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	if f.product == nil {
		return nil, database.ErrNotFound
	}
	return f.product, nil
}

func (f *fakeProductStore) FindAll(_ context.Context) ([]*models.Product, error) {
	return nil, nil
}

func (f *fakeProductStore) Update(_ context.Context, id string, update bson.M) error {
	f.updates = append(f.updates, update)
	return nil
}

func (f *fakeProductStore) Delete(_ context.Context, id string) error {
	f.product = nil
	return nil
}

// fakeUploader records deletions so tests can check only URLs, never
// bytes, reach the documents.
type fakeUploader struct {
	uploaded map[string][]byte
	deleted  []string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploaded: map[string][]byte{}}
}

func (f *fakeUploader) Upload(_ context.Context, folder, filename, contentType string, data []byte) (string, error) {
	url := "https://cdn.test/" + folder + "/" + filename
	f.uploaded[url] = data
	return url, nil
}

func (f *fakeUploader) UploadKey(_ context.Context, objectKey, contentType string, data []byte) (string, error) {
	url := "https://cdn.test/" + objectKey
	f.uploaded[url] = data
	return url, nil
}

func (f *fakeUploader) Delete(_ context.Context, publicURL string) error {
	f.deleted = append(f.deleted, publicURL)
	return nil
}

func strp(s string) *string { return &s }

func newCatalog(svcStore *fakeServiceStore, prodStore *fakeProductStore, up *fakeUploader) *CatalogService {
	return NewCatalogService(svcStore, prodStore, up, testLogger())
}

func TestCreateService(t *testing.T) {
	store := &fakeServiceStore{}
	svc := newCatalog(store, &fakeProductStore{}, newFakeUploader())

	id, err := svc.CreateService(context.Background(), ServiceInput{
		Name:  strp("Bridal Package"),
		Price: strp("15000"),
	})
	require.NoError(t, err)

	assert.Equal(t, "svc-1", id)
	assert.True(t, store.service.IsActive, "new services default to active")
}

func TestCreateService_ValidationBeforeStore(t *testing.T) {
	store := &fakeServiceStore{}
	svc := newCatalog(store, &fakeProductStore{}, newFakeUploader())

	_, err := svc.CreateService(context.Background(), ServiceInput{Name: strp("Haircut")})
	assert.Error(t, err, "missing price")
	assert.Zero(t, store.createCalled)

	_, err = svc.CreateService(context.Background(), ServiceInput{
		Name:  strp("Haircut"),
		Price: strp("about a thousand"),
	})
	assert.Error(t, err, "non numeric price")
	assert.Zero(t, store.createCalled)
}

func TestUpdateService_PartialUpdate(t *testing.T) {
	store := &fakeServiceStore{}
	svc := newCatalog(store, &fakeProductStore{}, newFakeUploader())

	featured := true
	err := svc.UpdateService(context.Background(), "svc-1", ServiceInput{Featured: &featured})
	require.NoError(t, err)

	require.Len(t, store.updates, 1)
	assert.Equal(t, bson.M{"featured": true}, store.updates[0])
}

func TestUpdateService_RejectsBadFields(t *testing.T) {
	store := &fakeServiceStore{}
	svc := newCatalog(store, &fakeProductStore{}, newFakeUploader())

	assert.Error(t, svc.UpdateService(context.Background(), "svc-1", ServiceInput{Name: strp("  ")}))
	assert.Error(t, svc.UpdateService(context.Background(), "svc-1", ServiceInput{Price: strp("free")}))

	badRating := 9.5
	assert.Error(t, svc.UpdateService(context.Background(), "svc-1", ServiceInput{Rating: &badRating}))

	assert.Error(t, svc.UpdateService(context.Background(), "svc-1", ServiceInput{}), "empty update")
	assert.Empty(t, store.updates)
}

func TestDeleteService_RemovesStoredImage(t *testing.T) {
	up := newFakeUploader()
	store := &fakeServiceStore{service: &models.Service{
		Name:     "Haircut",
		Price:    "600",
		ImageURL: "https://cdn.test/services/haircut.jpg",
	}}
	svc := newCatalog(store, &fakeProductStore{}, up)

	err := svc.DeleteService(context.Background(), "svc-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"svc-1"}, store.deleted)
	assert.Equal(t, []string{"https://cdn.test/services/haircut.jpg"}, up.deleted)
}

func TestCreateProduct_ValidationBeforeStore(t *testing.T) {
	store := &fakeProductStore{}
	svc := newCatalog(&fakeServiceStore{}, store, newFakeUploader())

	price := -10.0
	_, err := svc.CreateProduct(context.Background(), ProductInput{
		Name:  strp("Argan Oil"),
		Price: &price,
	})
	assert.Error(t, err)
	assert.Zero(t, store.createCalled)
}

func TestUpdateProduct_RejectsNegativeStock(t *testing.T) {
	store := &fakeProductStore{}
	svc := newCatalog(&fakeServiceStore{}, store, newFakeUploader())

	stock := -3
	err := svc.UpdateProduct(context.Background(), "prod-1", ProductInput{Stock: &stock})
	assert.Error(t, err)
	assert.Empty(t, store.updates)
}

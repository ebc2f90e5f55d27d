// Package catalog implements the catalog store: CRUD over the product
// collection persisted under the "products" key, plus the pure Filter
// function deriving the search/category view.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/avasin/brewmart/internal/common"
	"github.com/avasin/brewmart/internal/logging"
	"github.com/avasin/brewmart/internal/models"
	"github.com/avasin/brewmart/internal/storage"
)

// Service defines catalog store operations for the CLI.
//
// Contract:
//   - Load: read the catalog, seeding the fixed sample set when the
//     persisted collection is absent or empty. Note the documented quirk:
//     deleting every product makes the next Load re-seed.
//   - Create/Update: validate fields (common.ErrorValidation) and persist
//     the whole collection. Update and Delete report common.ErrorNotFound
//     for unknown ids.
//   - Get: single-product lookup, common.ErrorNotFound when absent.
type Service interface {
	Load(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, fields models.ProductFields) (*models.Product, error)
	Update(ctx context.Context, id string, fields models.ProductFields) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.Product, error)
}

type service struct {
	kv  storage.KV
	log logging.Logger
}

// NewService constructs a catalog store over the given key-value store.
func NewService(kv storage.KV, log logging.Logger) Service {
	return &service{kv: kv, log: log}
}

// loadProducts reads the persisted collection. Absent yields nil; a corrupt
// value is deleted and likewise yields nil.
func (s *service) loadProducts(ctx context.Context) ([]models.Product, error) {
	raw, err := s.kv.Get(ctx, storage.KeyProducts)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		s.log.Warn(ctx, "purging corrupt product collection", "error", err)
		if err := s.kv.Delete(ctx, storage.KeyProducts); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return products, nil
}

func (s *service) persist(ctx context.Context, products []models.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, storage.KeyProducts, raw)
}

func (s *service) Load(ctx context.Context) ([]models.Product, error) {
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		seed := make([]models.Product, len(SampleProducts))
		copy(seed, SampleProducts)
		if err := s.persist(ctx, seed); err != nil {
			return nil, err
		}
		s.log.Info(ctx, "catalog seeded with sample products", "count", len(seed))
		return seed, nil
	}

	return products, nil
}

func validateFields(fields models.ProductFields) error {
	if fields.Title == "" {
		return fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}
	if fields.Description == "" {
		return fmt.Errorf("%w: description must not be empty", common.ErrorValidation)
	}
	if !fields.Price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", common.ErrorValidation)
	}
	if _, err := models.ParseCategory(string(fields.Category)); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return nil
}

func (s *service) Create(ctx context.Context, fields models.ProductFields) (*models.Product, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	p := models.Product{
		Id:          uuid.NewString(),
		Title:       fields.Title,
		Price:       fields.Price,
		Description: fields.Description,
		Category:    fields.Category,
		Image:       fields.Image,
	}

	products = append(products, p)
	if err := s.persist(ctx, products); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "product created", "id", p.Id, "title", p.Title)
	return &p, nil
}

func (s *service) Update(ctx context.Context, id string, fields models.ProductFields) (*models.Product, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(products, id)
	if idx < 0 {
		return nil, fmt.Errorf("product %s: %w", id, common.ErrorNotFound)
	}

	products[idx] = models.Product{
		Id:          id,
		Title:       fields.Title,
		Price:       fields.Price,
		Description: fields.Description,
		Category:    fields.Category,
		Image:       fields.Image,
	}

	if err := s.persist(ctx, products); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "product updated", "id", id)
	p := products[idx]
	return &p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	products, err := s.loadProducts(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(products, id)
	if idx < 0 {
		return fmt.Errorf("product %s: %w", id, common.ErrorNotFound)
	}

	products = append(products[:idx], products[idx+1:]...)
	if err := s.persist(ctx, products); err != nil {
		return err
	}

	s.log.Info(ctx, "product deleted", "id", id)
	return nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(products, id)
	if idx < 0 {
		return nil, fmt.Errorf("product %s: %w", id, common.ErrorNotFound)
	}

	p := products[idx]
	return &p, nil
}

func indexOf(products []models.Product, id string) int {
	for i := range products {
		if products[i].Id == id {
			return i
		}
	}
	return -1
}

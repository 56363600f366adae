package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shop/internal/entities"
	"shop/pkg/logger"
)

const productsCacheKey = "catalog:products:all"

type Catalog struct {
	log        serviceLogger
	repository Repository
	txManager  TxManager
	cache      Cache
	cacheTTL   time.Duration
}

func New(log serviceLogger, repository Repository, txManager TxManager, cache Cache, cacheTTL time.Duration) *Catalog {
	return &Catalog{
		log:        log.With(logger.NewField("component", "catalog")),
		repository: repository,
		txManager:  txManager,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// ListProducts returns every product ordered by id. The list is served from
// the cache when possible; cache errors fall through to the database.
func (s *Catalog) ListProducts(ctx context.Context) ([]entities.Product, error) {
	if products, ok := s.cachedProducts(ctx); ok {
		return products, nil
	}

	products, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %w", ErrPersistence, err)
	}

	s.storeProducts(ctx, products)

	return products, nil
}

func (s *Catalog) CreateProduct(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	if err := validateProductModify(productModify); err != nil {
		return nil, err
	}

	var product *entities.Product
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		product, err = s.repository.Create(ctx, productModify)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: create product: %w", ErrPersistence, err)
	}

	if err := s.cache.Delete(ctx, productsCacheKey); err != nil {
		s.log.With(logger.NewField("error", err)).Warn("product list cache not invalidated")
	}

	return product, nil
}

func (s *Catalog) cachedProducts(ctx context.Context) ([]entities.Product, bool) {
	value, ok, err := s.cache.Get(ctx, productsCacheKey)
	if err != nil {
		s.log.With(logger.NewField("error", err)).Warn("product list cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var products []entities.Product
	if err := json.Unmarshal([]byte(value), &products); err != nil {
		s.log.With(logger.NewField("error", err)).Warn("product list cache entry is corrupted")
		return nil, false
	}

	return products, true
}

func (s *Catalog) storeProducts(ctx context.Context, products []entities.Product) {
	value, err := json.Marshal(products)
	if err != nil {
		s.log.With(logger.NewField("error", err)).Warn("product list not cached")
		return
	}

	if err := s.cache.Set(ctx, productsCacheKey, string(value), s.cacheTTL); err != nil {
		s.log.With(logger.NewField("error", err)).Warn("product list not cached")
	}
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/thepKz/gender-care-sub009/internal/events"
	"github.com/thepKz/gender-care-sub009/internal/logging"
	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/repo"
	"github.com/thepKz/gender-care-sub009/internal/transport"
)

// ProductIndexer is satisfied by search.Index. Nil means search is disabled.
type ProductIndexer interface {
	IndexProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer EventPublisher
	Indexer  ProductIndexer
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) GetProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	return s.Repo.GetProducts(ctx, offset, limit)
}

func (s *CatalogService) GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	return s.Repo.GetFeaturedProducts(ctx, limit)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if req.CategoryID != nil {
		if _, err := s.Repo.GetCategory(ctx, *req.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: category %s", ErrNotFound, req.CategoryID)
		}
	}

	prod := &models.Product{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Count:       req.Count,
		Featured:    req.Featured,
	}
	prod, err := s.Repo.CreateProduct(ctx, prod)
	if err != nil {
		return nil, err
	}

	s.reindex(ctx, prod)
	publish(ctx, s.Producer, events.TopicProductEvents, prod.ID.String(), map[string]any{
		"type":       "product_created",
		"product_id": prod.ID,
		"name":       prod.Name,
	})
	return prod, nil
}

func (s *CatalogService) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id uuid.UUID) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.Repo.GetCategory(ctx, *req.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: category %s", ErrNotFound, req.CategoryID)
		}
		prod.CategoryID = req.CategoryID
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name required", ErrValidation)
		}
		prod.Name = *req.Name
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}
		prod.Price = *req.Price
	}
	if req.Count != nil {
		prod.Count = *req.Count
	}
	if req.Featured != nil {
		prod.Featured = *req.Featured
	}

	prod, err = s.Repo.SaveProduct(ctx, prod)
	if err != nil {
		return nil, err
	}

	s.reindex(ctx, prod)
	publish(ctx, s.Producer, events.TopicProductEvents, prod.ID.String(), map[string]any{
		"type":       "product_updated",
		"product_id": prod.ID,
		"name":       prod.Name,
	})
	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	if s.Indexer != nil {
		if err := s.Indexer.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Error("search deindex failed", "product_id", id, "error", err)
		}
	}
	publish(ctx, s.Producer, events.TopicProductEvents, id.String(), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})
	return nil
}

func (s *CatalogService) reindex(ctx context.Context, prod *models.Product) {
	if s.Indexer == nil {
		return
	}
	if err := s.Indexer.IndexProduct(ctx, prod); err != nil {
		logging.FromContext(ctx).Error("search index failed", "product_id", prod.ID, "error", err)
	}
}

func (s *CatalogService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.Repo.GetCategory(ctx, id)
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.GetCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, req transport.CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	return s.Repo.CreateCategory(ctx, &models.Category{
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *CatalogService) PatchCategory(ctx context.Context, req transport.PatchCategoryRequest, id uuid.UUID) (*models.Category, error) {
	cat, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name required", ErrValidation)
		}
		cat.Name = *req.Name
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}

	return s.Repo.SaveCategory(ctx, cat)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.Repo.DeleteCategory(ctx, id)
}

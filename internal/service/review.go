package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/metrics"
	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/repo"
	"github.com/thepKz/gender-care-sub009/internal/transport"
)

type ReviewService struct {
	Repo *repo.GormRepo
}

// Create persists the review and then recomputes the product's derived
// rating fields as an explicit second step. The two writes are not atomic;
// concurrent reviews on one product resolve last-write-wins and the next
// write corrects the aggregate.
func (s *ReviewService) Create(ctx context.Context, req transport.CreateReviewRequest, productID uuid.UUID) (*models.Review, error) {
	if req.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id required", ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return nil, err
	}

	review, err := s.Repo.CreateReview(ctx, &models.Review{
		ProductID: productID,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Title:     req.Title,
		Body:      req.Body,
	})
	if err != nil {
		return nil, err
	}
	metrics.ReviewsWritten.Inc()

	if err := s.recomputeRating(ctx, productID); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID uuid.UUID, offset, limit int) (int64, []models.Review, error) {
	return s.Repo.GetReviewsByProduct(ctx, productID, offset, limit)
}

func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	review, err := s.Repo.GetReview(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteReview(ctx, id); err != nil {
		return err
	}
	return s.recomputeRating(ctx, review.ProductID)
}

func (s *ReviewService) recomputeRating(ctx context.Context, productID uuid.UUID) error {
	avg, count, err := s.Repo.AggregateProductRating(ctx, productID)
	if err != nil {
		return err
	}
	return s.Repo.UpdateProductRating(ctx, productID, avg, count)
}

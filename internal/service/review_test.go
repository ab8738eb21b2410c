package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/transport"
)

func TestReviewService_Create_RecomputesRating(t *testing.T) {
	r := newTestRepo(t)
	svc := &ReviewService{Repo: r}
	ctx := t.Context()

	prod := createTestProduct(t, r, "vitamin pack", 100)

	for _, rating := range []int{5, 4, 3} {
		_, err := svc.Create(ctx, transport.CreateReviewRequest{
			UserID: uuid.New(),
			Rating: rating,
		}, prod.ID)
		require.NoError(t, err)
	}

	got, err := r.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got.AverageRating, 1e-9)
	assert.Equal(t, int64(3), got.ReviewCount)
}

func TestReviewService_DeleteAll_ResetsRating(t *testing.T) {
	r := newTestRepo(t)
	svc := &ReviewService{Repo: r}
	ctx := t.Context()

	prod := createTestProduct(t, r, "vitamin pack", 100)

	var reviews []*models.Review
	for _, rating := range []int{5, 4, 3} {
		review, err := svc.Create(ctx, transport.CreateReviewRequest{
			UserID: uuid.New(),
			Rating: rating,
		}, prod.ID)
		require.NoError(t, err)
		reviews = append(reviews, review)
	}

	for _, review := range reviews {
		require.NoError(t, svc.Delete(ctx, review.ID))
	}

	got, err := r.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0, got.AverageRating, 1e-9)
	assert.Equal(t, int64(0), got.ReviewCount)
}

func TestReviewService_Create_Validation(t *testing.T) {
	r := newTestRepo(t)
	svc := &ReviewService{Repo: r}
	ctx := t.Context()

	prod := createTestProduct(t, r, "vitamin pack", 100)

	tests := []struct {
		name   string
		rating int
		userID uuid.UUID
	}{
		{name: "rating too low", rating: 0, userID: uuid.New()},
		{name: "rating too high", rating: 6, userID: uuid.New()},
		{name: "missing user", rating: 4, userID: uuid.Nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, transport.CreateReviewRequest{
				UserID: tt.userID,
				Rating: tt.rating,
			}, prod.ID)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestReviewService_Create_UnknownProduct(t *testing.T) {
	svc := &ReviewService{Repo: newTestRepo(t)}

	_, err := svc.Create(t.Context(), transport.CreateReviewRequest{
		UserID: uuid.New(),
		Rating: 5,
	}, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

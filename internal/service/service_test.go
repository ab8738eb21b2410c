package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/config"
	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return repo.New(db)
}

func createTestProduct(t *testing.T, r *repo.GormRepo, name string, price float64) *models.Product {
	t.Helper()

	prod, err := r.CreateProduct(t.Context(), &models.Product{
		Name:        name,
		Description: name + " description",
		Price:       price,
		Count:       100,
	})
	require.NoError(t, err)
	return prod
}

func createTestPromotion(t *testing.T, r *repo.GormRepo, code, discountType string, value float64, maxUses int) *models.Promotion {
	t.Helper()

	now := time.Now().UTC()
	promo, err := r.CreatePromotion(t.Context(), &models.Promotion{
		Code:          code,
		DiscountType:  discountType,
		DiscountValue: value,
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(time.Hour),
		MaxUses:       maxUses,
	})
	require.NoError(t, err)
	return promo
}

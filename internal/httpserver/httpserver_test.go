package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/config"
	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/repo"
	"github.com/thepKz/gender-care-sub009/internal/service"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Repo   *repo.GormRepo
	Auth   *AuthHTTP
	Cat    *CatalogHTTP
	Orders *OrderHTTP
	Promos *PromotionHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	r := repo.New(db)
	promoSvc := &service.PromotionService{Repo: r}

	return &testEnv{
		T:      t,
		E:      echo.New(),
		DB:     db,
		Repo:   r,
		Auth:   &AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: []byte("test-secret")}},
		Cat:    &CatalogHTTP{Svc: &service.CatalogService{Repo: r}},
		Orders: &OrderHTTP{Svc: &service.OrderService{Repo: r, Promos: promoSvc}},
		Promos: &PromotionHTTP{Svc: promoSvc},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) createProduct(name string, price float64) *models.Product {
	env.T.Helper()

	prod, err := env.Repo.CreateProduct(env.T.Context(), &models.Product{
		Name:  name,
		Price: price,
		Count: 10,
	})
	require.NoError(env.T, err)
	return prod
}

// requireHTTPError asserts the handler bailed with the given status code.
func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
}

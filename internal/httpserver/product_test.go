package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/transport"
)

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	prod := env.createProduct("folic acid", 12.5)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/products/"+prod.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(prod.ID.String())
	require.NoError(t, env.Cat.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, prod.ID, resp.ID)
	require.Equal(t, prod.Name, resp.Name)
	require.InDelta(t, prod.Price, resp.Price, 1e-9)
}

func TestGetProduct_BadID(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/api/products/not-a-uuid", nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	requireHTTPError(t, env.Cat.GetProduct(c), http.StatusBadRequest)
}

func TestGetProduct_NotFound(t *testing.T) {
	env := newTestEnv(t)

	missing := "0d4ffb54-55b0-4a21-9082-9f2b4b804413"
	_, c := env.doJSONRequest(http.MethodGet, "/api/products/"+missing, nil)
	c.SetParamNames("id")
	c.SetParamValues(missing)
	requireHTTPError(t, env.Cat.GetProduct(c), http.StatusNotFound)
}

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/products", transport.CreateProductRequest{
		Name:  "prenatal vitamins",
		Price: 24.9,
		Count: 50,
	})
	require.NoError(t, env.Cat.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "prenatal vitamins", resp.Name)
}

func TestCreateProduct_Invalid(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/products", transport.CreateProductRequest{
		Price: 24.9,
	})
	requireHTTPError(t, env.Cat.CreateProduct(c), http.StatusBadRequest)
}

func TestPatchProduct(t *testing.T) {
	env := newTestEnv(t)

	prod := env.createProduct("folic acid", 12.5)

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/products/"+prod.ID.String(), map[string]any{
		"name":  "folic acid 400mcg",
		"price": 14.0,
	})
	c.SetParamNames("id")
	c.SetParamValues(prod.ID.String())
	require.NoError(t, env.Cat.PatchProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, prod.ID, resp.ID)
	require.Equal(t, "folic acid 400mcg", resp.Name)
	require.InDelta(t, 14.0, resp.Price, 1e-9)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)

	prod := env.createProduct("folic acid", 12.5)

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/products/"+prod.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(prod.ID.String())
	require.NoError(t, env.Cat.DeleteProduct(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, c = env.doJSONRequest(http.MethodGet, "/api/products/"+prod.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(prod.ID.String())
	requireHTTPError(t, env.Cat.GetProduct(c), http.StatusNotFound)
}

package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/transport"
)

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)

	prod := env.createProduct("folic acid", 50)
	userID := uuid.New()

	rec, c := env.doJSONRequest(http.MethodPost, "/api/users/"+userID.String()+"/orders", transport.CreateOrderRequest{
		Items: []transport.CreateOrderItem{{ProductID: prod.ID, Quantity: 2}},
	})
	c.SetParamNames("userId")
	c.SetParamValues(userID.String())
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, models.OrderStatusPending, resp.Status)
	require.InDelta(t, 100, resp.Total, 1e-9)
	require.Len(t, resp.Items, 1)
}

func TestCreateOrder_WithPromotion(t *testing.T) {
	env := newTestEnv(t)

	prod := env.createProduct("folic acid", 100)
	now := time.Now().UTC()
	_, err := env.Repo.CreatePromotion(t.Context(), &models.Promotion{
		Code:          "WELCOME10",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 10,
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(time.Hour),
	})
	require.NoError(t, err)

	userID := uuid.New()
	rec, c := env.doJSONRequest(http.MethodPost, "/api/users/"+userID.String()+"/orders", transport.CreateOrderRequest{
		Items:         []transport.CreateOrderItem{{ProductID: prod.ID, Quantity: 1}},
		PromotionCode: "WELCOME10",
	})
	c.SetParamNames("userId")
	c.SetParamValues(userID.String())
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.InDelta(t, 100, resp.Subtotal, 1e-9)
	require.InDelta(t, 10, resp.Discount, 1e-9)
	require.InDelta(t, 90, resp.Total, 1e-9)
}

func TestCreateOrder_UnknownPromotion(t *testing.T) {
	env := newTestEnv(t)

	prod := env.createProduct("folic acid", 100)
	userID := uuid.New()

	_, c := env.doJSONRequest(http.MethodPost, "/api/users/"+userID.String()+"/orders", transport.CreateOrderRequest{
		Items:         []transport.CreateOrderItem{{ProductID: prod.ID, Quantity: 1}},
		PromotionCode: "NOPE",
	})
	c.SetParamNames("userId")
	c.SetParamValues(userID.String())
	requireHTTPError(t, env.Orders.CreateOrder(c), http.StatusNotFound)
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	env := newTestEnv(t)

	userID := uuid.New()
	_, c := env.doJSONRequest(http.MethodPost, "/api/users/"+userID.String()+"/orders", transport.CreateOrderRequest{})
	c.SetParamNames("userId")
	c.SetParamValues(userID.String())
	requireHTTPError(t, env.Orders.CreateOrder(c), http.StatusBadRequest)
}

func TestUpdateOrderStatus(t *testing.T) {
	env := newTestEnv(t)

	prod := env.createProduct("folic acid", 50)
	userID := uuid.New()

	rec, c := env.doJSONRequest(http.MethodPost, "/api/users/"+userID.String()+"/orders", transport.CreateOrderRequest{
		Items: []transport.CreateOrderItem{{ProductID: prod.ID, Quantity: 1}},
	})
	c.SetParamNames("userId")
	c.SetParamValues(userID.String())
	require.NoError(t, env.Orders.CreateOrder(c))

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	rec, c = env.doJSONRequest(http.MethodPatch, "/api/orders/"+order.ID.String()+"/status", transport.UpdateStatusRequest{
		Status: models.OrderStatusShipped,
	})
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())
	require.NoError(t, env.Orders.UpdateStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, models.OrderStatusShipped, resp.Status)

	_, c = env.doJSONRequest(http.MethodPatch, "/api/orders/"+order.ID.String()+"/status", transport.UpdateStatusRequest{
		Status: "lost_in_transit",
	})
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())
	requireHTTPError(t, env.Orders.UpdateStatus(c), http.StatusBadRequest)
}

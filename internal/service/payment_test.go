package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/transport"
)

func newPaymentFixture(t *testing.T) (*PaymentService, *models.Order) {
	t.Helper()

	r := newTestRepo(t)
	orderSvc := &OrderService{Repo: r, Promos: &PromotionService{Repo: r}}

	prod := createTestProduct(t, r, "vitamin pack", 100)
	order, err := orderSvc.CreateOrder(t.Context(), transport.CreateOrderRequest{
		Items: []transport.CreateOrderItem{{ProductID: prod.ID, Quantity: 1}},
	}, uuid.New())
	require.NoError(t, err)

	return &PaymentService{Repo: r}, order
}

func TestPaymentService_Create_StartsPending(t *testing.T) {
	svc, order := newPaymentFixture(t)

	payment, err := svc.Create(t.Context(), transport.CreatePaymentRequest{
		OrderID: order.ID,
		Amount:  100,
		Method:  models.PaymentMethodCreditCard,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
}

func TestPaymentService_Create_AmountNotCrossValidated(t *testing.T) {
	svc, order := newPaymentFixture(t)

	// the recorded amount may differ from the order total
	payment, err := svc.Create(t.Context(), transport.CreatePaymentRequest{
		OrderID: order.ID,
		Amount:  order.Total + 42,
		Method:  models.PaymentMethodWallet,
	})
	require.NoError(t, err)
	assert.InDelta(t, order.Total+42, payment.Amount, 1e-9)
}

func TestPaymentService_Create_UnknownOrder(t *testing.T) {
	svc, _ := newPaymentFixture(t)

	_, err := svc.Create(t.Context(), transport.CreatePaymentRequest{
		OrderID: uuid.New(),
		Amount:  100,
		Method:  models.PaymentMethodCreditCard,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentService_Create_Validation(t *testing.T) {
	svc, order := newPaymentFixture(t)
	ctx := t.Context()

	tests := []struct {
		name string
		req  transport.CreatePaymentRequest
	}{
		{name: "missing order", req: transport.CreatePaymentRequest{
			Amount: 10, Method: models.PaymentMethodCreditCard,
		}},
		{name: "negative amount", req: transport.CreatePaymentRequest{
			OrderID: order.ID, Amount: -1, Method: models.PaymentMethodCreditCard,
		}},
		{name: "unknown method", req: transport.CreatePaymentRequest{
			OrderID: order.ID, Amount: 10, Method: "barter",
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestPaymentService_UpdateStatus_DirectTransitions(t *testing.T) {
	svc, order := newPaymentFixture(t)
	ctx := t.Context()

	payment, err := svc.Create(ctx, transport.CreatePaymentRequest{
		OrderID: order.ID,
		Amount:  100,
		Method:  models.PaymentMethodBankTransfer,
	})
	require.NoError(t, err)

	// pending straight to completed
	updated, err := svc.UpdateStatus(ctx, payment.ID, models.PaymentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, updated.Status)

	// and back to failed, no state machine in the way
	updated, err = svc.UpdateStatus(ctx, payment.ID, models.PaymentStatusFailed)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, updated.Status)

	_, err = svc.UpdateStatus(ctx, payment.ID, "refunded-ish")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreatePaymentMethod_NestedDetailsKept(t *testing.T) {
	repo := &MockPaymentMethodRepo{}
	svc := NewPaymentMethodService(repo, &stubAudit{}, zap.NewNop())
	ctx := context.Background()

	var req request.PaymentMethodRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "SEPA",
		"type": "bank_transfer",
		"details": {"bank": {"iban": "DE89370400440532013000", "bic": "COBADEFFXXX"}, "min": 10, "networks": ["sepa", "swift"]}
	}`), &req))

	var stored *entity.PaymentMethod
	repo.On("Create", ctx, mock.AnythingOfType("*entity.PaymentMethod")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*entity.PaymentMethod) }).
		Return(nil)

	resp, err := svc.Create(ctx, &req)
	require.NoError(t, err)
	require.NotNil(t, stored)

	bank, ok := stored.Details["bank"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "DE89370400440532013000", bank["iban"])
	assert.Equal(t, float64(10), stored.Details["min"])
	assert.Equal(t, []any{"sepa", "swift"}, stored.Details["networks"])
	assert.Equal(t, stored.Details, resp.Details)
	assert.True(t, resp.IsActive)
}

func TestCreatePaymentMethod_NilDetailsBecomeEmptyObject(t *testing.T) {
	repo := &MockPaymentMethodRepo{}
	svc := NewPaymentMethodService(repo, &stubAudit{}, zap.NewNop())
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(pm *entity.PaymentMethod) bool {
		return pm.Details != nil && len(pm.Details) == 0
	})).Return(nil)

	_, err := svc.Create(ctx, &request.PaymentMethodRequest{Name: "Card", Type: "card"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-ledger-api/internal/application/analytics"
	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
	"github.com/jhoicas/asset-ledger-api/internal/domain/scope"
)

type stubPurchaseLister struct {
	repository.PurchaseRepository
	rows       []*entity.Purchase
	lastFilter repository.LedgerFilter
}

func (s *stubPurchaseLister) List(_ context.Context, f repository.LedgerFilter) ([]*entity.Purchase, error) {
	s.lastFilter = f
	return s.rows, nil
}

type stubTransferLister struct {
	repository.TransferRepository
	rows       []*entity.Transfer
	lastFilter repository.LedgerFilter
}

func (s *stubTransferLister) List(_ context.Context, f repository.LedgerFilter) ([]*entity.Transfer, error) {
	s.lastFilter = f
	return s.rows, nil
}

func TestMovementDetails_SplitsTransfersByDirection(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	purchases := &stubPurchaseLister{rows: []*entity.Purchase{
		{ID: 1, BaseID: 2, EquipmentTypeID: 1, Quantity: 10, PurchaseDate: day},
	}}
	transfers := &stubTransferLister{rows: []*entity.Transfer{
		{ID: 7, FromBaseID: 1, ToBaseID: 2, EquipmentTypeID: 1, Quantity: 5, Status: entity.TransferCompleted, TransferDate: day},
		{ID: 8, FromBaseID: 2, ToBaseID: 3, EquipmentTypeID: 1, Quantity: 3, Status: entity.TransferCompleted, TransferDate: day},
	}}
	uc := analytics.NewMovementUseCase(purchases, transfers)
	commander := scope.Actor{UserID: 2, Role: scope.RoleBaseCommander, BaseID: int64ptr(2)}

	details, err := uc.Details(context.Background(), commander, analytics.Query{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	require.NoError(t, err)

	require.Len(t, details.Purchases, 1)
	assert.Equal(t, "2025-06-10", details.Purchases[0].PurchaseDate)
	require.Len(t, details.TransfersIn, 1)
	assert.Equal(t, int64(7), details.TransfersIn[0].ID)
	require.Len(t, details.TransfersOut, 1)
	assert.Equal(t, int64(8), details.TransfersOut[0].ID)

	// only completed transfers count toward movement
	assert.Equal(t, entity.TransferCompleted, transfers.lastFilter.Status)
	require.NotNil(t, purchases.lastFilter.BaseID)
	assert.Equal(t, int64(2), *purchases.lastFilter.BaseID)
}

func TestMovementDetails_UnscopedShowsBothDirections(t *testing.T) {
	transfers := &stubTransferLister{rows: []*entity.Transfer{
		{ID: 7, FromBaseID: 1, ToBaseID: 2, EquipmentTypeID: 1, Quantity: 5, Status: entity.TransferCompleted, TransferDate: time.Now()},
	}}
	uc := analytics.NewMovementUseCase(&stubPurchaseLister{}, transfers)

	details, err := uc.Details(context.Background(), admin, analytics.Query{})
	require.NoError(t, err)
	assert.Len(t, details.TransfersIn, 1)
	assert.Len(t, details.TransfersOut, 1)
}

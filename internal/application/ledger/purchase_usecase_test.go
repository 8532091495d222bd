package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/domain"
)

func TestCreatePurchase_ReceivedCreditsInventory(t *testing.T) {
	f := newFixture()
	uc := newPurchaseUC(f)

	id, err := uc.Create(context.Background(), adminActor, dto.CreatePurchaseRequest{
		BaseID:          1,
		EquipmentTypeID: 1,
		Quantity:        10,
		PurchaseDate:    "2026-08-01",
		ReceivedDate:    "2026-08-03",
		Vendor:          "Colt Defense",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Equal(t, int64(10), f.stock(1, 1), "received purchase must credit inventory at creation")
}

func TestCreatePurchase_OrderedThenReceived(t *testing.T) {
	f := newFixture()
	uc := newPurchaseUC(f)
	ctx := context.Background()

	id, err := uc.Create(ctx, logisticsBase1, dto.CreatePurchaseRequest{
		BaseID:          1,
		EquipmentTypeID: 2,
		Quantity:        500,
		PurchaseDate:    "2026-08-01",
	})
	require.NoError(t, err)
	assert.Zero(t, f.stock(1, 2), "ordered purchase has no inventory effect")

	require.NoError(t, uc.Receive(ctx, logisticsBase1, id, dto.ReceivePurchaseRequest{ReceivedDate: "2026-08-05"}))
	assert.Equal(t, int64(500), f.stock(1, 2))

	// receiving twice must not double-credit
	err = uc.Receive(ctx, logisticsBase1, id, dto.ReceivePurchaseRequest{ReceivedDate: "2026-08-06"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, int64(500), f.stock(1, 2))
}

func TestCreatePurchase_UnitPriceDerivesTotal(t *testing.T) {
	f := newFixture()
	uc := newPurchaseUC(f)
	price := "1250.50"

	id, err := uc.Create(context.Background(), adminActor, dto.CreatePurchaseRequest{
		BaseID:          1,
		EquipmentTypeID: 1,
		Quantity:        4,
		UnitPrice:       &price,
		PurchaseDate:    "2026-08-01",
	})
	require.NoError(t, err)

	p := f.purchases[id]
	require.NotNil(t, p.TotalPrice)
	assert.True(t, p.TotalPrice.Equal(decimal.RequireFromString("5002.00")),
		"total = unit price x quantity, got %s", p.TotalPrice)
}

func TestCreatePurchase_Validation(t *testing.T) {
	f := newFixture()
	uc := newPurchaseUC(f)
	ctx := context.Background()

	_, err := uc.Create(ctx, adminActor, dto.CreatePurchaseRequest{
		BaseID: 1, EquipmentTypeID: 1, Quantity: 0, PurchaseDate: "2026-08-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "zero quantity")

	_, err = uc.Create(ctx, adminActor, dto.CreatePurchaseRequest{
		BaseID: 1, EquipmentTypeID: 1, Quantity: 5, PurchaseDate: "not-a-date",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "malformed date")

	bad := "-3"
	_, err = uc.Create(ctx, adminActor, dto.CreatePurchaseRequest{
		BaseID: 1, EquipmentTypeID: 1, Quantity: 5, UnitPrice: &bad, PurchaseDate: "2026-08-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "negative unit price")

	_, err = uc.Create(ctx, adminActor, dto.CreatePurchaseRequest{
		BaseID: 99, EquipmentTypeID: 1, Quantity: 5, PurchaseDate: "2026-08-01",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "unknown base")

	assert.Empty(t, f.purchases, "no failed creation may leave a row behind")
}

func TestCreatePurchase_ScopeEnforcement(t *testing.T) {
	f := newFixture()
	uc := newPurchaseUC(f)
	ctx := context.Background()

	_, err := uc.Create(ctx, commanderBase2, dto.CreatePurchaseRequest{
		BaseID: 3, EquipmentTypeID: 1, Quantity: 5, PurchaseDate: "2026-08-01",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "commander of base 2 must not purchase for base 3")
	assert.Zero(t, f.stock(3, 1))

	_, err = uc.Create(ctx, commanderBase2, dto.CreatePurchaseRequest{
		BaseID: 2, EquipmentTypeID: 1, Quantity: 5, PurchaseDate: "2026-08-01", ReceivedDate: "2026-08-02",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), f.stock(2, 1))
}

func TestDeletePurchase_UnwindsReceived(t *testing.T) {
	f := newFixture()
	uc := newPurchaseUC(f)
	ctx := context.Background()

	id, err := uc.Create(ctx, adminActor, dto.CreatePurchaseRequest{
		BaseID: 1, EquipmentTypeID: 1, Quantity: 10, PurchaseDate: "2026-08-01", ReceivedDate: "2026-08-02",
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), f.stock(1, 1))

	require.NoError(t, uc.Delete(ctx, adminActor, id))
	assert.Zero(t, f.stock(1, 1), "deleting a received purchase reverses the credit")
	assert.Empty(t, f.purchases)
}

func TestDeletePurchase_OrderedLeavesInventoryAlone(t *testing.T) {
	f := newFixture()
	uc := newPurchaseUC(f)
	ctx := context.Background()
	f.setStock(1, 1, 7)

	id, err := uc.Create(ctx, adminActor, dto.CreatePurchaseRequest{
		BaseID: 1, EquipmentTypeID: 1, Quantity: 10, PurchaseDate: "2026-08-01",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, adminActor, id))
	assert.Equal(t, int64(7), f.stock(1, 1))
}

func TestDeletePurchase_AdminOnly(t *testing.T) {
	f := newFixture()
	uc := newPurchaseUC(f)
	ctx := context.Background()

	id, err := uc.Create(ctx, adminActor, dto.CreatePurchaseRequest{
		BaseID: 2, EquipmentTypeID: 1, Quantity: 10, PurchaseDate: "2026-08-01", ReceivedDate: "2026-08-02",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ctx, commanderBase2, id), domain.ErrForbidden)
	assert.Equal(t, int64(10), f.stock(2, 1))
}

func TestDeletePurchase_GuardsAgainstNegativeInventory(t *testing.T) {
	f := newFixture()
	uc := newPurchaseUC(f)
	ctx := context.Background()

	id, err := uc.Create(ctx, adminActor, dto.CreatePurchaseRequest{
		BaseID: 1, EquipmentTypeID: 1, Quantity: 10, PurchaseDate: "2026-08-01", ReceivedDate: "2026-08-02",
	})
	require.NoError(t, err)

	// the stock has since moved elsewhere
	f.setStock(1, 1, 4)

	assert.ErrorIs(t, uc.Delete(ctx, adminActor, id), domain.ErrInsufficientInventory)
	assert.Equal(t, int64(4), f.stock(1, 1), "failed unwind must not touch inventory")
	assert.Len(t, f.purchases, 1, "the record survives a failed unwind")
}

package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/domain"
	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
)

func createPendingTransfer(t *testing.T, f *fixture, qty int64) int64 {
	t.Helper()
	uc := newTransferUC(f)
	id, err := uc.Create(context.Background(), adminActor, dto.CreateTransferRequest{
		EquipmentTypeID: 1,
		FromBaseID:      1,
		ToBaseID:        2,
		Quantity:        qty,
		TransferDate:    "2026-08-10",
	})
	require.NoError(t, err)
	return id
}

func TestCreateTransfer_DeductsSourceImmediately(t *testing.T) {
	f := newFixture()
	f.setStock(1, 1, 20)

	createPendingTransfer(t, f, 8)

	assert.Equal(t, int64(12), f.stock(1, 1), "quantity is in transit, off the source books")
	assert.Zero(t, f.stock(2, 1), "destination is only credited on completion")
}

func TestCreateTransfer_InsufficientInventory(t *testing.T) {
	f := newFixture()
	f.setStock(1, 1, 5)
	uc := newTransferUC(f)

	_, err := uc.Create(context.Background(), adminActor, dto.CreateTransferRequest{
		EquipmentTypeID: 1, FromBaseID: 1, ToBaseID: 2, Quantity: 6, TransferDate: "2026-08-10",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
	assert.Equal(t, int64(5), f.stock(1, 1))
	assert.Empty(t, f.transfers)
}

func TestCreateTransfer_SameBaseRejected(t *testing.T) {
	f := newFixture()
	f.setStock(1, 1, 20)
	uc := newTransferUC(f)

	_, err := uc.Create(context.Background(), adminActor, dto.CreateTransferRequest{
		EquipmentTypeID: 1, FromBaseID: 1, ToBaseID: 1, Quantity: 5, TransferDate: "2026-08-10",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateTransfer_CommanderOnlyFromOwnBase(t *testing.T) {
	f := newFixture()
	f.setStock(1, 1, 20)
	f.setStock(2, 1, 20)
	uc := newTransferUC(f)
	ctx := context.Background()

	_, err := uc.Create(ctx, commanderBase2, dto.CreateTransferRequest{
		EquipmentTypeID: 1, FromBaseID: 1, ToBaseID: 2, Quantity: 5, TransferDate: "2026-08-10",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Create(ctx, commanderBase2, dto.CreateTransferRequest{
		EquipmentTypeID: 1, FromBaseID: 2, ToBaseID: 1, Quantity: 5, TransferDate: "2026-08-10",
	})
	assert.NoError(t, err)
}

func TestSetTransferStatus_CompleteCreditsDestinationOnce(t *testing.T) {
	f := newFixture()
	f.setStock(1, 1, 20)
	id := createPendingTransfer(t, f, 8)
	uc := newTransferUC(f)
	ctx := context.Background()

	require.NoError(t, uc.SetStatus(ctx, adminActor, id, dto.SetTransferStatusRequest{Status: entity.TransferCompleted}))
	assert.Equal(t, int64(12), f.stock(1, 1), "completion leaves the source untouched")
	assert.Equal(t, int64(8), f.stock(2, 1))

	// idempotent re-submission: success, no second credit
	require.NoError(t, uc.SetStatus(ctx, adminActor, id, dto.SetTransferStatusRequest{Status: entity.TransferCompleted}))
	assert.Equal(t, int64(8), f.stock(2, 1), "double completion must credit exactly once")

	tr := f.transfers[id]
	require.NotNil(t, tr.ApprovedBy)
	assert.Equal(t, adminActor.UserID, *tr.ApprovedBy)
	assert.NotNil(t, tr.ReceivedDate)
}

func TestSetTransferStatus_CancelReturnsToSource(t *testing.T) {
	f := newFixture()
	f.setStock(1, 1, 20)
	id := createPendingTransfer(t, f, 8)
	uc := newTransferUC(f)
	ctx := context.Background()

	require.NoError(t, uc.SetStatus(ctx, adminActor, id, dto.SetTransferStatusRequest{Status: entity.TransferCancelled}))
	assert.Equal(t, int64(20), f.stock(1, 1), "cancellation returns the in-transit quantity")
	assert.Zero(t, f.stock(2, 1), "cancellation never touches the destination")

	// idempotent re-submission
	require.NoError(t, uc.SetStatus(ctx, adminActor, id, dto.SetTransferStatusRequest{Status: entity.TransferCancelled}))
	assert.Equal(t, int64(20), f.stock(1, 1))
}

func TestSetTransferStatus_TerminalStatesRejectTransitions(t *testing.T) {
	f := newFixture()
	f.setStock(1, 1, 20)
	id := createPendingTransfer(t, f, 8)
	uc := newTransferUC(f)
	ctx := context.Background()

	require.NoError(t, uc.SetStatus(ctx, adminActor, id, dto.SetTransferStatusRequest{Status: entity.TransferCompleted}))

	err := uc.SetStatus(ctx, adminActor, id, dto.SetTransferStatusRequest{Status: entity.TransferCancelled})
	assert.ErrorIs(t, err, domain.ErrConflict, "completed is terminal")

	err = uc.SetStatus(ctx, adminActor, id, dto.SetTransferStatusRequest{Status: entity.TransferPending})
	assert.ErrorIs(t, err, domain.ErrConflict, "no way back to pending")

	assert.Equal(t, int64(8), f.stock(2, 1))
	assert.Equal(t, int64(12), f.stock(1, 1))
}

func TestSetTransferStatus_InvalidStatus(t *testing.T) {
	f := newFixture()
	f.setStock(1, 1, 20)
	id := createPendingTransfer(t, f, 8)
	uc := newTransferUC(f)

	err := uc.SetStatus(context.Background(), adminActor, id, dto.SetTransferStatusRequest{Status: "shipped"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetTransferStatus_CommanderNeedsInvolvedBase(t *testing.T) {
	f := newFixture()
	f.setStock(1, 1, 20)
	uc := newTransferUC(f)
	ctx := context.Background()

	// base 1 -> base 3: commander of base 2 is not involved
	id, err := uc.Create(ctx, adminActor, dto.CreateTransferRequest{
		EquipmentTypeID: 1, FromBaseID: 1, ToBaseID: 3, Quantity: 5, TransferDate: "2026-08-10",
	})
	require.NoError(t, err)

	err = uc.SetStatus(ctx, commanderBase2, id, dto.SetTransferStatusRequest{Status: entity.TransferCompleted})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, f.stock(3, 1))
}

func TestDeleteTransfer_PendingReturnsToSource(t *testing.T) {
	f := newFixture()
	f.setStock(1, 1, 20)
	id := createPendingTransfer(t, f, 8)
	uc := newTransferUC(f)

	require.NoError(t, uc.Delete(context.Background(), adminActor, id))
	assert.Equal(t, int64(20), f.stock(1, 1), "deleting a pending transfer mirrors the creation deduction")
	assert.Empty(t, f.transfers)
}

func TestDeleteTransfer_CompletedUnwindsBothEnds(t *testing.T) {
	f := newFixture()
	f.setStock(1, 1, 20)
	id := createPendingTransfer(t, f, 8)
	uc := newTransferUC(f)
	ctx := context.Background()

	require.NoError(t, uc.SetStatus(ctx, adminActor, id, dto.SetTransferStatusRequest{Status: entity.TransferCompleted}))
	require.NoError(t, uc.Delete(ctx, adminActor, id))

	assert.Equal(t, int64(20), f.stock(1, 1))
	assert.Zero(t, f.stock(2, 1))
}

func TestDeleteTransfer_CancelledLeavesInventoryAlone(t *testing.T) {
	f := newFixture()
	f.setStock(1, 1, 20)
	id := createPendingTransfer(t, f, 8)
	uc := newTransferUC(f)
	ctx := context.Background()

	require.NoError(t, uc.SetStatus(ctx, adminActor, id, dto.SetTransferStatusRequest{Status: entity.TransferCancelled}))
	require.NoError(t, uc.Delete(ctx, adminActor, id))

	assert.Equal(t, int64(20), f.stock(1, 1), "cancellation already restored the source")
	assert.Zero(t, f.stock(2, 1))
}

// Transfers only redistribute stock; the network-wide total is conserved
// through every step of the lifecycle.
func TestTransferLifecycle_ConservesTotalStock(t *testing.T) {
	f := newFixture()
	f.setStock(1, 1, 30)
	f.setStock(2, 1, 10)
	uc := newTransferUC(f)
	ctx := context.Background()

	total := func() int64 { return f.stock(1, 1) + f.stock(2, 1) + f.stock(3, 1) }

	id := createPendingTransfer(t, f, 8)
	assert.Equal(t, int64(32), total(), "in-transit stock is off the books until completion")

	require.NoError(t, uc.SetStatus(ctx, adminActor, id, dto.SetTransferStatusRequest{Status: entity.TransferCompleted}))
	assert.Equal(t, int64(40), total(), "completion restores the network total")
}

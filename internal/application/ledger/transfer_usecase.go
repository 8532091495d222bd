package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/domain"
	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
	"github.com/jhoicas/asset-ledger-api/internal/domain/scope"
)

// TransferUseCase moves stock between bases through the pending -> completed /
// cancelled state machine. Creation deducts from the source immediately (the
// quantity is in transit); completion credits the destination, cancellation
// returns it to the source. Terminal states only move forward via deletion.
type TransferUseCase struct {
	txRunner     TxRunner
	baseRepo     repository.BaseRepository
	equipRepo    repository.EquipmentTypeRepository
	transferRepo repository.TransferRepository
}

// NewTransferUseCase builds the use case.
func NewTransferUseCase(
	txRunner TxRunner,
	baseRepo repository.BaseRepository,
	equipRepo repository.EquipmentTypeRepository,
	transferRepo repository.TransferRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:     txRunner,
		baseRepo:     baseRepo,
		equipRepo:    equipRepo,
		transferRepo: transferRepo,
	}
}

// Create validates and records a transfer in pending state, deducting the
// quantity from the source base inside the same transaction.
func (uc *TransferUseCase) Create(ctx context.Context, actor scope.Actor, in dto.CreateTransferRequest) (int64, error) {
	if in.FromBaseID <= 0 || in.ToBaseID <= 0 || in.EquipmentTypeID <= 0 || in.Quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	if in.FromBaseID == in.ToBaseID {
		return 0, domain.ErrInvalidInput
	}
	transferDate, err := parseDate(in.TransferDate)
	if err != nil {
		return 0, err
	}
	if err := scope.CheckWrite(actor, scope.ActionCreateTransfer, in.FromBaseID); err != nil {
		return 0, err
	}
	if err := uc.checkRefs(ctx, in.FromBaseID, in.ToBaseID, in.EquipmentTypeID); err != nil {
		return 0, err
	}

	transfer := &entity.Transfer{
		EquipmentTypeID: in.EquipmentTypeID,
		FromBaseID:      in.FromBaseID,
		ToBaseID:        in.ToBaseID,
		Quantity:        in.Quantity,
		TransferDate:    transferDate,
		Status:          entity.TransferPending,
		InitiatedBy:     actor.UserID,
		Notes:           in.Notes,
		CreatedAt:       time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(r Repos) error {
		inv, err := r.Inventory.GetForUpdate(ctx, in.FromBaseID, in.EquipmentTypeID)
		if err != nil {
			return err
		}
		if inv.Quantity < in.Quantity {
			return domain.ErrInsufficientInventory
		}
		if err := r.Transfers.Create(ctx, transfer); err != nil {
			return err
		}
		return r.Inventory.Adjust(ctx, in.FromBaseID, in.EquipmentTypeID, -in.Quantity)
	})
	if err != nil {
		return 0, err
	}
	return transfer.ID, nil
}

// SetStatus drives the transfer state machine. Re-submitting the current
// status is a no-op; any other transition out of completed or cancelled is a
// Conflict. The inventory effect of each transition is applied exactly once.
func (uc *TransferUseCase) SetStatus(ctx context.Context, actor scope.Actor, id int64, in dto.SetTransferStatusRequest) error {
	if !entity.ValidTransferStatus(in.Status) {
		return domain.ErrInvalidInput
	}
	receivedDate, err := parseOptionalDate(in.ReceivedDate)
	if err != nil {
		return err
	}

	return uc.txRunner.Run(ctx, func(r Repos) error {
		transfer, err := r.Transfers.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		if err := scope.CheckTransferAccess(actor, scope.ActionSetTransferStatus, transfer.FromBaseID, transfer.ToBaseID); err != nil {
			return err
		}
		if in.Status == transfer.Status {
			// Idempotent re-submission: no inventory effect, not an error.
			return nil
		}
		if transfer.Status != entity.TransferPending {
			return domain.ErrConflict
		}

		approvedBy := actor.UserID
		switch in.Status {
		case entity.TransferCompleted:
			if receivedDate == nil {
				now := time.Now()
				receivedDate = &now
			}
			if err := r.Transfers.SetStatus(ctx, id, entity.TransferCompleted, receivedDate, &approvedBy); err != nil {
				return err
			}
			return r.Inventory.Adjust(ctx, transfer.ToBaseID, transfer.EquipmentTypeID, transfer.Quantity)
		case entity.TransferCancelled:
			if err := r.Transfers.SetStatus(ctx, id, entity.TransferCancelled, nil, &approvedBy); err != nil {
				return err
			}
			return r.Inventory.Adjust(ctx, transfer.FromBaseID, transfer.EquipmentTypeID, transfer.Quantity)
		default:
			// Back to pending from a terminal state is never legal.
			return domain.ErrConflict
		}
	})
}

// Delete unwinds a transfer according to its status: a completed transfer is
// deducted from the destination, and anything not cancelled is returned to the
// source (mirroring the creation deduction).
func (uc *TransferUseCase) Delete(ctx context.Context, actor scope.Actor, id int64) error {
	if !scope.Allowed(actor.Role, scope.ActionDelete) {
		return domain.ErrForbidden
	}
	return uc.txRunner.Run(ctx, func(r Repos) error {
		transfer, err := r.Transfers.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		if transfer.Status == entity.TransferCompleted {
			inv, err := r.Inventory.GetForUpdate(ctx, transfer.ToBaseID, transfer.EquipmentTypeID)
			if err != nil {
				return err
			}
			if inv.Quantity < transfer.Quantity {
				return domain.ErrInsufficientInventory
			}
			if err := r.Inventory.Adjust(ctx, transfer.ToBaseID, transfer.EquipmentTypeID, -transfer.Quantity); err != nil {
				return err
			}
		}
		if transfer.Status != entity.TransferCancelled {
			if err := r.Inventory.Adjust(ctx, transfer.FromBaseID, transfer.EquipmentTypeID, transfer.Quantity); err != nil {
				return err
			}
		}
		return r.Transfers.Delete(ctx, id)
	})
}

// List returns transfers visible to the actor. For non-admins the base filter
// matches either end of the transfer.
func (uc *TransferUseCase) List(ctx context.Context, actor scope.Actor, q dto.LedgerListQuery) ([]*entity.Transfer, error) {
	from, to, err := parseRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}
	if q.Status != "" && !entity.ValidTransferStatus(q.Status) {
		return nil, domain.ErrInvalidInput
	}
	filter := repository.LedgerFilter{
		ScopeFilter: repository.ScopeFilter{
			BaseID:          scope.ResolveBase(actor, q.BaseID),
			EquipmentTypeID: q.EquipmentTypeID,
		},
		Status: q.Status,
		From:   from,
		To:     to,
	}
	return uc.transferRepo.List(ctx, filter)
}

func (uc *TransferUseCase) checkRefs(ctx context.Context, fromBaseID, toBaseID, equipmentTypeID int64) error {
	fromBase, err := uc.baseRepo.GetByID(ctx, fromBaseID)
	if err != nil {
		return err
	}
	toBase, err := uc.baseRepo.GetByID(ctx, toBaseID)
	if err != nil {
		return err
	}
	equip, err := uc.equipRepo.GetByID(ctx, equipmentTypeID)
	if err != nil {
		return err
	}
	if fromBase == nil || toBase == nil || equip == nil {
		return domain.ErrNotFound
	}
	return nil
}

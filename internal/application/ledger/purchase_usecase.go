package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/domain"
	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
	"github.com/jhoicas/asset-ledger-api/internal/domain/scope"
)

// PurchaseUseCase records purchases and their ordered -> received lifecycle.
// A purchase credits inventory exactly once: at creation when it arrives
// already received, or on the explicit receive update.
type PurchaseUseCase struct {
	txRunner     TxRunner
	baseRepo     repository.BaseRepository
	equipRepo    repository.EquipmentTypeRepository
	purchaseRepo repository.PurchaseRepository
}

// NewPurchaseUseCase builds the use case.
func NewPurchaseUseCase(
	txRunner TxRunner,
	baseRepo repository.BaseRepository,
	equipRepo repository.EquipmentTypeRepository,
	purchaseRepo repository.PurchaseRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		baseRepo:     baseRepo,
		equipRepo:    equipRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Create validates, authorizes and records a purchase. When the request carries
// a received date the inventory credit lands in the same transaction as the row.
func (uc *PurchaseUseCase) Create(ctx context.Context, actor scope.Actor, in dto.CreatePurchaseRequest) (int64, error) {
	if in.BaseID <= 0 || in.EquipmentTypeID <= 0 || in.Quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	purchaseDate, err := parseDate(in.PurchaseDate)
	if err != nil {
		return 0, err
	}
	receivedDate, err := parseOptionalDate(in.ReceivedDate)
	if err != nil {
		return 0, err
	}
	var unitPrice, totalPrice *decimal.Decimal
	if in.UnitPrice != nil {
		p, err := decimal.NewFromString(*in.UnitPrice)
		if err != nil || p.IsNegative() {
			return 0, domain.ErrInvalidInput
		}
		total := p.Mul(decimal.NewFromInt(in.Quantity))
		unitPrice, totalPrice = &p, &total
	}

	if err := scope.CheckWrite(actor, scope.ActionCreatePurchase, in.BaseID); err != nil {
		return 0, err
	}
	if err := uc.checkRefs(ctx, in.BaseID, in.EquipmentTypeID); err != nil {
		return 0, err
	}

	purchase := &entity.Purchase{
		BaseID:          in.BaseID,
		EquipmentTypeID: in.EquipmentTypeID,
		Quantity:        in.Quantity,
		UnitPrice:       unitPrice,
		TotalPrice:      totalPrice,
		Vendor:          in.Vendor,
		PurchaseDate:    purchaseDate,
		ReceivedDate:    receivedDate,
		CreatedBy:       actor.UserID,
		Notes:           in.Notes,
		CreatedAt:       time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(r Repos) error {
		if err := r.Purchases.Create(ctx, purchase); err != nil {
			return err
		}
		if purchase.Received() {
			return r.Inventory.Adjust(ctx, purchase.BaseID, purchase.EquipmentTypeID, purchase.Quantity)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purchase.ID, nil
}

// Receive marks an ordered purchase as received and credits inventory once.
// Receiving an already-received purchase is a Conflict; un-receiving is not
// supported, only deletion.
func (uc *PurchaseUseCase) Receive(ctx context.Context, actor scope.Actor, id int64, in dto.ReceivePurchaseRequest) error {
	receivedDate, err := parseDate(in.ReceivedDate)
	if err != nil {
		return err
	}
	if !scope.Allowed(actor.Role, scope.ActionReceivePurchase) {
		return domain.ErrForbidden
	}

	return uc.txRunner.Run(ctx, func(r Repos) error {
		purchase, err := r.Purchases.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		if err := scope.CheckWrite(actor, scope.ActionReceivePurchase, purchase.BaseID); err != nil {
			return err
		}
		if purchase.Received() {
			return domain.ErrConflict
		}
		if err := r.Purchases.SetReceived(ctx, id, receivedDate); err != nil {
			return err
		}
		return r.Inventory.Adjust(ctx, purchase.BaseID, purchase.EquipmentTypeID, purchase.Quantity)
	})
}

// Delete removes a purchase and, when it was received, reverses the inventory
// credit. The reversal is a deduction, so it is guarded by an availability
// check like any other deduction.
func (uc *PurchaseUseCase) Delete(ctx context.Context, actor scope.Actor, id int64) error {
	if !scope.Allowed(actor.Role, scope.ActionDelete) {
		return domain.ErrForbidden
	}
	return uc.txRunner.Run(ctx, func(r Repos) error {
		purchase, err := r.Purchases.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		if purchase.Received() {
			inv, err := r.Inventory.GetForUpdate(ctx, purchase.BaseID, purchase.EquipmentTypeID)
			if err != nil {
				return err
			}
			if inv.Quantity < purchase.Quantity {
				return domain.ErrInsufficientInventory
			}
			if err := r.Inventory.Adjust(ctx, purchase.BaseID, purchase.EquipmentTypeID, -purchase.Quantity); err != nil {
				return err
			}
		}
		return r.Purchases.Delete(ctx, id)
	})
}

// List returns purchases visible to the actor, applying the role's base scope.
func (uc *PurchaseUseCase) List(ctx context.Context, actor scope.Actor, q dto.LedgerListQuery) ([]*entity.Purchase, error) {
	from, to, err := parseRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}
	filter := repository.LedgerFilter{
		ScopeFilter: repository.ScopeFilter{
			BaseID:          scope.ResolveBase(actor, q.BaseID),
			EquipmentTypeID: q.EquipmentTypeID,
		},
		From: from,
		To:   to,
	}
	return uc.purchaseRepo.List(ctx, filter)
}

func (uc *PurchaseUseCase) checkRefs(ctx context.Context, baseID, equipmentTypeID int64) error {
	base, err := uc.baseRepo.GetByID(ctx, baseID)
	if err != nil {
		return err
	}
	equip, err := uc.equipRepo.GetByID(ctx, equipmentTypeID)
	if err != nil {
		return err
	}
	if base == nil || equip == nil {
		return domain.ErrNotFound
	}
	return nil
}

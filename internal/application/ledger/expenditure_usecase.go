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

// ExpenditureUseCase records consumed stock. The deduction is permanent;
// deleting an expenditure re-credits inventory as a bookkeeping correction.
type ExpenditureUseCase struct {
	txRunner        TxRunner
	baseRepo        repository.BaseRepository
	equipRepo       repository.EquipmentTypeRepository
	expenditureRepo repository.ExpenditureRepository
}

// NewExpenditureUseCase builds the use case.
func NewExpenditureUseCase(
	txRunner TxRunner,
	baseRepo repository.BaseRepository,
	equipRepo repository.EquipmentTypeRepository,
	expenditureRepo repository.ExpenditureRepository,
) *ExpenditureUseCase {
	return &ExpenditureUseCase{
		txRunner:        txRunner,
		baseRepo:        baseRepo,
		equipRepo:       equipRepo,
		expenditureRepo: expenditureRepo,
	}
}

// Create validates availability and records the expenditure, deducting the
// quantity in the same transaction.
func (uc *ExpenditureUseCase) Create(ctx context.Context, actor scope.Actor, in dto.CreateExpenditureRequest) (int64, error) {
	if in.BaseID <= 0 || in.EquipmentTypeID <= 0 || in.Quantity <= 0 || in.Reason == "" {
		return 0, domain.ErrInvalidInput
	}
	expendedDate, err := parseDate(in.ExpendedDate)
	if err != nil {
		return 0, err
	}
	if err := scope.CheckWrite(actor, scope.ActionCreateExpenditure, in.BaseID); err != nil {
		return 0, err
	}
	if err := uc.checkRefs(ctx, in.BaseID, in.EquipmentTypeID); err != nil {
		return 0, err
	}

	expenditure := &entity.Expenditure{
		BaseID:          in.BaseID,
		EquipmentTypeID: in.EquipmentTypeID,
		Quantity:        in.Quantity,
		ExpendedDate:    expendedDate,
		Reason:          in.Reason,
		AuthorizedBy:    in.AuthorizedBy,
		CreatedBy:       actor.UserID,
		Notes:           in.Notes,
		CreatedAt:       time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(r Repos) error {
		inv, err := r.Inventory.GetForUpdate(ctx, in.BaseID, in.EquipmentTypeID)
		if err != nil {
			return err
		}
		if inv.Quantity < in.Quantity {
			return domain.ErrInsufficientInventory
		}
		if err := r.Expenditures.Create(ctx, expenditure); err != nil {
			return err
		}
		return r.Inventory.Adjust(ctx, in.BaseID, in.EquipmentTypeID, -in.Quantity)
	})
	if err != nil {
		return 0, err
	}
	return expenditure.ID, nil
}

// Delete removes an expenditure and re-credits its quantity. This corrects a
// mistaken record; it is not an un-consume of real stock.
func (uc *ExpenditureUseCase) Delete(ctx context.Context, actor scope.Actor, id int64) error {
	if !scope.Allowed(actor.Role, scope.ActionDelete) {
		return domain.ErrForbidden
	}
	return uc.txRunner.Run(ctx, func(r Repos) error {
		expenditure, err := r.Expenditures.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if expenditure == nil {
			return domain.ErrNotFound
		}
		if err := r.Inventory.Adjust(ctx, expenditure.BaseID, expenditure.EquipmentTypeID, expenditure.Quantity); err != nil {
			return err
		}
		return r.Expenditures.Delete(ctx, id)
	})
}

// List returns expenditures visible to the actor, applying the role's base scope.
func (uc *ExpenditureUseCase) List(ctx context.Context, actor scope.Actor, q dto.LedgerListQuery) ([]*entity.Expenditure, error) {
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
	return uc.expenditureRepo.List(ctx, filter)
}

func (uc *ExpenditureUseCase) checkRefs(ctx context.Context, baseID, equipmentTypeID int64) error {
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

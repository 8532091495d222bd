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

// AssignmentUseCase checks equipment out to personnel. Assigned stock stays
// owned by the base but is not available until the assignment is returned.
type AssignmentUseCase struct {
	txRunner       TxRunner
	baseRepo       repository.BaseRepository
	equipRepo      repository.EquipmentTypeRepository
	assignmentRepo repository.AssignmentRepository
}

// NewAssignmentUseCase builds the use case.
func NewAssignmentUseCase(
	txRunner TxRunner,
	baseRepo repository.BaseRepository,
	equipRepo repository.EquipmentTypeRepository,
	assignmentRepo repository.AssignmentRepository,
) *AssignmentUseCase {
	return &AssignmentUseCase{
		txRunner:       txRunner,
		baseRepo:       baseRepo,
		equipRepo:      equipRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Create validates availability and records an active assignment, deducting
// the quantity in the same transaction.
func (uc *AssignmentUseCase) Create(ctx context.Context, actor scope.Actor, in dto.CreateAssignmentRequest) (int64, error) {
	if in.BaseID <= 0 || in.EquipmentTypeID <= 0 || in.Quantity <= 0 || in.AssignedTo == "" {
		return 0, domain.ErrInvalidInput
	}
	assignedDate, err := parseDate(in.AssignedDate)
	if err != nil {
		return 0, err
	}
	if err := scope.CheckWrite(actor, scope.ActionCreateAssignment, in.BaseID); err != nil {
		return 0, err
	}
	if err := uc.checkRefs(ctx, in.BaseID, in.EquipmentTypeID); err != nil {
		return 0, err
	}

	assignment := &entity.Assignment{
		BaseID:          in.BaseID,
		EquipmentTypeID: in.EquipmentTypeID,
		Quantity:        in.Quantity,
		AssignedTo:      in.AssignedTo,
		AssignedDate:    assignedDate,
		Purpose:         in.Purpose,
		Status:          entity.AssignmentActive,
		CreatedBy:       actor.UserID,
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
		if err := r.Assignments.Create(ctx, assignment); err != nil {
			return err
		}
		return r.Inventory.Adjust(ctx, in.BaseID, in.EquipmentTypeID, -in.Quantity)
	})
	if err != nil {
		return 0, err
	}
	return assignment.ID, nil
}

// Return marks an active assignment as returned and credits the quantity back.
// Only legal once; a second return is a Conflict and does not touch inventory.
func (uc *AssignmentUseCase) Return(ctx context.Context, actor scope.Actor, id int64, in dto.ReturnAssignmentRequest) error {
	returnDate, err := parseDate(in.ReturnDate)
	if err != nil {
		return err
	}
	if !scope.Allowed(actor.Role, scope.ActionReturnAssignment) {
		return domain.ErrForbidden
	}

	return uc.txRunner.Run(ctx, func(r Repos) error {
		assignment, err := r.Assignments.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if assignment == nil {
			return domain.ErrNotFound
		}
		if err := scope.CheckWrite(actor, scope.ActionReturnAssignment, assignment.BaseID); err != nil {
			return err
		}
		if assignment.Status == entity.AssignmentReturned {
			return domain.ErrConflict
		}
		if err := r.Assignments.MarkReturned(ctx, id, returnDate); err != nil {
			return err
		}
		return r.Inventory.Adjust(ctx, assignment.BaseID, assignment.EquipmentTypeID, assignment.Quantity)
	})
}

// Delete removes an assignment; an active one returns its quantity to
// inventory first so no stock is lost with the record.
func (uc *AssignmentUseCase) Delete(ctx context.Context, actor scope.Actor, id int64) error {
	if !scope.Allowed(actor.Role, scope.ActionDelete) {
		return domain.ErrForbidden
	}
	return uc.txRunner.Run(ctx, func(r Repos) error {
		assignment, err := r.Assignments.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if assignment == nil {
			return domain.ErrNotFound
		}
		if assignment.Status == entity.AssignmentActive {
			if err := r.Inventory.Adjust(ctx, assignment.BaseID, assignment.EquipmentTypeID, assignment.Quantity); err != nil {
				return err
			}
		}
		return r.Assignments.Delete(ctx, id)
	})
}

// List returns assignments visible to the actor, applying the role's base scope.
func (uc *AssignmentUseCase) List(ctx context.Context, actor scope.Actor, q dto.LedgerListQuery) ([]*entity.Assignment, error) {
	from, to, err := parseRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
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
	return uc.assignmentRepo.List(ctx, filter)
}

func (uc *AssignmentUseCase) checkRefs(ctx context.Context, baseID, equipmentTypeID int64) error {
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

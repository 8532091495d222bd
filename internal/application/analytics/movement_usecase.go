package analytics

import (
	"context"

	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
	"github.com/jhoicas/asset-ledger-api/internal/domain/scope"
)

// MovementUseCase expands the net-movement figure into the individual ledger
// rows behind it, for the dashboard drill-down.
type MovementUseCase struct {
	purchaseRepo repository.PurchaseRepository
	transferRepo repository.TransferRepository
}

func NewMovementUseCase(purchaseRepo repository.PurchaseRepository, transferRepo repository.TransferRepository) *MovementUseCase {
	return &MovementUseCase{purchaseRepo: purchaseRepo, transferRepo: transferRepo}
}

// Details lists the purchases and the completed transfers in and out of the
// effective scope over the given range. Transfers are split by direction
// relative to the scoped base; with no base filter every transfer shows on
// both sides, which matches how the balance engine sums them.
func (uc *MovementUseCase) Details(ctx context.Context, actor scope.Actor, q Query) (*dto.MovementDetails, error) {
	baseID := scope.ResolveBase(actor, q.BaseID)
	r, err := resolveRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}
	f := repository.LedgerFilter{
		ScopeFilter: repository.ScopeFilter{BaseID: baseID, EquipmentTypeID: q.EquipmentTypeID},
		From:        &r.From,
		To:          &r.To,
	}

	type purchaseResult struct {
		rows []*entity.Purchase
		err  error
	}
	type transferResult struct {
		rows []*entity.Transfer
		err  error
	}
	purchasesCh := make(chan purchaseResult, 1)
	transfersCh := make(chan transferResult, 1)
	go func() {
		rows, err := uc.purchaseRepo.List(ctx, f)
		purchasesCh <- purchaseResult{rows, err}
	}()
	go func() {
		tf := f
		tf.Status = entity.TransferCompleted
		rows, err := uc.transferRepo.List(ctx, tf)
		transfersCh <- transferResult{rows, err}
	}()

	purchases := <-purchasesCh
	transfers := <-transfersCh
	if purchases.err != nil {
		return nil, purchases.err
	}
	if transfers.err != nil {
		return nil, transfers.err
	}

	out := &dto.MovementDetails{
		Purchases:    make([]dto.PurchaseResponse, 0, len(purchases.rows)),
		TransfersIn:  []dto.TransferResponse{},
		TransfersOut: []dto.TransferResponse{},
	}
	for _, p := range purchases.rows {
		out.Purchases = append(out.Purchases, dto.NewPurchaseResponse(*p))
	}
	for _, t := range transfers.rows {
		resp := dto.NewTransferResponse(*t)
		if baseID == nil || t.ToBaseID == *baseID {
			out.TransfersIn = append(out.TransfersIn, resp)
		}
		if baseID == nil || t.FromBaseID == *baseID {
			out.TransfersOut = append(out.TransfersOut, resp)
		}
	}
	return out, nil
}

// Package analytics contains the read-only use cases behind the dashboard:
// the balance engine and the movement/inventory breakdowns.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/domain"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
	"github.com/jhoicas/asset-ledger-api/internal/domain/scope"
)

const dateLayout = "2006-01-02"

// defaultRangeDays is the window used when the caller gives no date range.
const defaultRangeDays = 30

// BalanceUseCase computes the per-scope balance report by aggregating the
// movement ledger against the inventory snapshot.
//
// The opening balance is back-derived from the closing one
// (closing - net_movement + assigned + expended) rather than replayed from the
// ledger. It is a known approximation: any inventory change outside the range
// that the four summed categories do not capture (for example an assignment
// returned before the range whose creation falls inside it) skews the figure.
type BalanceUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewBalanceUseCase builds the use case.
func NewBalanceUseCase(analyticsRepo repository.AnalyticsRepository) *BalanceUseCase {
	return &BalanceUseCase{analyticsRepo: analyticsRepo}
}

// Query is the balance request after transport decoding.
type Query struct {
	BaseID          *int64
	EquipmentTypeID *int64
	StartDate       string // "YYYY-MM-DD", optional
	EndDate         string // "YYYY-MM-DD", optional
}

// ComputeBalance resolves the actor's scope, fills the default date range
// (last 30 days ending today) and runs the six aggregates concurrently.
func (uc *BalanceUseCase) ComputeBalance(ctx context.Context, actor scope.Actor, q Query) (*dto.BalanceReport, error) {
	f := repository.ScopeFilter{
		BaseID:          scope.ResolveBase(actor, q.BaseID),
		EquipmentTypeID: q.EquipmentTypeID,
	}
	r, err := resolveRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}

	type sumResult struct {
		n   int64
		err error
	}
	run := func(fn func(context.Context, repository.ScopeFilter, repository.DateRange) (int64, error)) chan sumResult {
		ch := make(chan sumResult, 1)
		go func() {
			n, err := fn(ctx, f, r)
			ch <- sumResult{n, err}
		}()
		return ch
	}

	closingCh := make(chan sumResult, 1)
	go func() {
		n, err := uc.analyticsRepo.SumInventory(ctx, f)
		closingCh <- sumResult{n, err}
	}()
	purchasesCh := run(uc.analyticsRepo.SumPurchases)
	inCh := run(uc.analyticsRepo.SumTransfersIn)
	outCh := run(uc.analyticsRepo.SumTransfersOut)
	assignedCh := run(uc.analyticsRepo.SumActiveAssignments)
	expendedCh := run(uc.analyticsRepo.SumExpenditures)

	closing := <-closingCh
	purchases := <-purchasesCh
	transferIn := <-inCh
	transferOut := <-outCh
	assigned := <-assignedCh
	expended := <-expendedCh

	for _, res := range []sumResult{closing, purchases, transferIn, transferOut, assigned, expended} {
		if res.err != nil {
			return nil, fmt.Errorf("balance: %w", res.err)
		}
	}

	netMovement := purchases.n + transferIn.n - transferOut.n
	opening := closing.n - netMovement + assigned.n + expended.n

	return &dto.BalanceReport{
		Metrics: dto.BalanceMetrics{
			OpeningBalance: opening,
			ClosingBalance: closing.n,
			NetMovement:    netMovement,
			Purchases:      purchases.n,
			TransferIn:     transferIn.n,
			TransferOut:    transferOut.n,
			Assigned:       assigned.n,
			Expended:       expended.n,
		},
		Filters: dto.BalanceFilters{
			BaseID:          f.BaseID,
			EquipmentTypeID: f.EquipmentTypeID,
			StartDate:       r.From.Format(dateLayout),
			EndDate:         r.To.Format(dateLayout),
		},
	}, nil
}

// InventorySummary returns the snapshot joined with reference names, scoped to
// the actor's effective base.
func (uc *BalanceUseCase) InventorySummary(ctx context.Context, actor scope.Actor, baseID *int64) ([]dto.InventorySummaryItem, error) {
	rows, err := uc.analyticsRepo.InventorySummary(ctx, scope.ResolveBase(actor, baseID))
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventorySummaryItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.InventorySummaryItem{
			BaseName:      r.BaseName,
			EquipmentName: r.EquipmentName,
			Category:      r.Category,
			Quantity:      r.Quantity,
			UnitOfMeasure: r.UnitOfMeasure,
		})
	}
	return items, nil
}

// resolveRange parses the bounds, filling the default window (last 30 days
// ending today, inclusive) for anything unspecified.
func resolveRange(start, end string) (repository.DateRange, error) {
	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := to.AddDate(0, 0, -defaultRangeDays)
	var err error
	if end != "" {
		if to, err = time.Parse(dateLayout, end); err != nil {
			return repository.DateRange{}, fmt.Errorf("%w: end_date %q", domain.ErrInvalidInput, end)
		}
	}
	if start != "" {
		if from, err = time.Parse(dateLayout, start); err != nil {
			return repository.DateRange{}, fmt.Errorf("%w: start_date %q", domain.ErrInvalidInput, start)
		}
	}
	return repository.DateRange{From: from, To: to}, nil
}

package ledger_test

import (
	"context"
	"time"

	"github.com/jhoicas/asset-ledger-api/internal/application/ledger"
	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
	"github.com/jhoicas/asset-ledger-api/internal/domain/scope"
)

// In-memory fixture backing all repository ports, so the use cases can be
// exercised without a database. The fake TxRunner runs the callback directly;
// the use cases never mutate before their guards pass, so a returned error
// leaves the fixture untouched just like a rolled-back transaction.

type invKey struct{ baseID, equipmentTypeID int64 }

type fixture struct {
	inv          map[invKey]int64
	bases        map[int64]*entity.Base
	equipment    map[int64]*entity.EquipmentType
	purchases    map[int64]*entity.Purchase
	transfers    map[int64]*entity.Transfer
	assignments  map[int64]*entity.Assignment
	expenditures map[int64]*entity.Expenditure
	nextID       int64
}

func newFixture() *fixture {
	return &fixture{
		inv: map[invKey]int64{},
		bases: map[int64]*entity.Base{
			1: {ID: 1, Name: "Base Alpha", Location: "Sector 1"},
			2: {ID: 2, Name: "Base Bravo", Location: "Sector 2"},
			3: {ID: 3, Name: "Base Charlie", Location: "Sector 3"},
		},
		equipment: map[int64]*entity.EquipmentType{
			1: {ID: 1, Name: "M4 Carbine", Category: entity.CategoryWeapon, UnitOfMeasure: "unit"},
			2: {ID: 2, Name: "5.56mm Ammo", Category: entity.CategoryAmmo, UnitOfMeasure: "round"},
		},
		purchases:    map[int64]*entity.Purchase{},
		transfers:    map[int64]*entity.Transfer{},
		assignments:  map[int64]*entity.Assignment{},
		expenditures: map[int64]*entity.Expenditure{},
	}
}

func (f *fixture) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fixture) setStock(baseID, equipmentTypeID, qty int64) {
	f.inv[invKey{baseID, equipmentTypeID}] = qty
}

func (f *fixture) stock(baseID, equipmentTypeID int64) int64 {
	return f.inv[invKey{baseID, equipmentTypeID}]
}

// txRunner plugs the fixture-bound repos into ledger.TxRunner.
type txRunner struct{ f *fixture }

func (t *txRunner) Run(_ context.Context, fn func(r ledger.Repos) error) error {
	return fn(ledger.Repos{
		Inventory:    &invRepo{t.f},
		Purchases:    &purchaseRepo{t.f},
		Transfers:    &transferRepo{t.f},
		Assignments:  &assignmentRepo{t.f},
		Expenditures: &expenditureRepo{t.f},
	})
}

// ── Inventory ────────────────────────────────────────────────────────────────

type invRepo struct{ f *fixture }

func (r *invRepo) Get(_ context.Context, baseID, typeID int64) (*entity.InventoryEntry, error) {
	return &entity.InventoryEntry{BaseID: baseID, EquipmentTypeID: typeID, Quantity: r.f.inv[invKey{baseID, typeID}]}, nil
}

func (r *invRepo) GetForUpdate(ctx context.Context, baseID, typeID int64) (*entity.InventoryEntry, error) {
	return r.Get(ctx, baseID, typeID)
}

func (r *invRepo) Adjust(_ context.Context, baseID, typeID, delta int64) error {
	k := invKey{baseID, typeID}
	if _, ok := r.f.inv[k]; !ok && delta <= 0 {
		// a deduction never creates a row
		return nil
	}
	r.f.inv[k] += delta
	return nil
}

func (r *invRepo) List(_ context.Context, filter repository.ScopeFilter) ([]*entity.InventoryEntry, error) {
	var out []*entity.InventoryEntry
	for k, qty := range r.f.inv {
		if filter.BaseID != nil && *filter.BaseID != k.baseID {
			continue
		}
		if filter.EquipmentTypeID != nil && *filter.EquipmentTypeID != k.equipmentTypeID {
			continue
		}
		out = append(out, &entity.InventoryEntry{BaseID: k.baseID, EquipmentTypeID: k.equipmentTypeID, Quantity: qty})
	}
	return out, nil
}

// ── Reference data ───────────────────────────────────────────────────────────

type baseRepo struct{ f *fixture }

func (r *baseRepo) GetByID(_ context.Context, id int64) (*entity.Base, error) {
	return r.f.bases[id], nil
}

func (r *baseRepo) List(_ context.Context) ([]*entity.Base, error) {
	var out []*entity.Base
	for _, b := range r.f.bases {
		out = append(out, b)
	}
	return out, nil
}

type equipRepo struct{ f *fixture }

func (r *equipRepo) GetByID(_ context.Context, id int64) (*entity.EquipmentType, error) {
	return r.f.equipment[id], nil
}

func (r *equipRepo) List(_ context.Context, _ string) ([]*entity.EquipmentType, error) {
	var out []*entity.EquipmentType
	for _, e := range r.f.equipment {
		out = append(out, e)
	}
	return out, nil
}

// ── Ledger records ───────────────────────────────────────────────────────────

type purchaseRepo struct{ f *fixture }

func (r *purchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	p.ID = r.f.id()
	cp := *p
	r.f.purchases[p.ID] = &cp
	return nil
}

func (r *purchaseRepo) GetByID(_ context.Context, id int64) (*entity.Purchase, error) {
	p, ok := r.f.purchases[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *purchaseRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Purchase, error) {
	return r.GetByID(ctx, id)
}

func (r *purchaseRepo) SetReceived(_ context.Context, id int64, receivedDate time.Time) error {
	r.f.purchases[id].ReceivedDate = &receivedDate
	return nil
}

func (r *purchaseRepo) Delete(_ context.Context, id int64) error {
	delete(r.f.purchases, id)
	return nil
}

func (r *purchaseRepo) List(_ context.Context, _ repository.LedgerFilter) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range r.f.purchases {
		out = append(out, p)
	}
	return out, nil
}

type transferRepo struct{ f *fixture }

func (r *transferRepo) Create(_ context.Context, t *entity.Transfer) error {
	t.ID = r.f.id()
	cp := *t
	r.f.transfers[t.ID] = &cp
	return nil
}

func (r *transferRepo) GetByID(_ context.Context, id int64) (*entity.Transfer, error) {
	t, ok := r.f.transfers[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *transferRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Transfer, error) {
	return r.GetByID(ctx, id)
}

func (r *transferRepo) SetStatus(_ context.Context, id int64, status string, receivedDate *time.Time, approvedBy *int64) error {
	t := r.f.transfers[id]
	t.Status = status
	t.ReceivedDate = receivedDate
	t.ApprovedBy = approvedBy
	return nil
}

func (r *transferRepo) Delete(_ context.Context, id int64) error {
	delete(r.f.transfers, id)
	return nil
}

func (r *transferRepo) List(_ context.Context, _ repository.LedgerFilter) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, t := range r.f.transfers {
		out = append(out, t)
	}
	return out, nil
}

type assignmentRepo struct{ f *fixture }

func (r *assignmentRepo) Create(_ context.Context, a *entity.Assignment) error {
	a.ID = r.f.id()
	cp := *a
	r.f.assignments[a.ID] = &cp
	return nil
}

func (r *assignmentRepo) GetByID(_ context.Context, id int64) (*entity.Assignment, error) {
	a, ok := r.f.assignments[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *assignmentRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Assignment, error) {
	return r.GetByID(ctx, id)
}

func (r *assignmentRepo) MarkReturned(_ context.Context, id int64, returnDate time.Time) error {
	a := r.f.assignments[id]
	a.Status = entity.AssignmentReturned
	a.ReturnDate = &returnDate
	return nil
}

func (r *assignmentRepo) Delete(_ context.Context, id int64) error {
	delete(r.f.assignments, id)
	return nil
}

func (r *assignmentRepo) List(_ context.Context, _ repository.LedgerFilter) ([]*entity.Assignment, error) {
	var out []*entity.Assignment
	for _, a := range r.f.assignments {
		out = append(out, a)
	}
	return out, nil
}

type expenditureRepo struct{ f *fixture }

func (r *expenditureRepo) Create(_ context.Context, e *entity.Expenditure) error {
	e.ID = r.f.id()
	cp := *e
	r.f.expenditures[e.ID] = &cp
	return nil
}

func (r *expenditureRepo) GetByID(_ context.Context, id int64) (*entity.Expenditure, error) {
	e, ok := r.f.expenditures[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *expenditureRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Expenditure, error) {
	return r.GetByID(ctx, id)
}

func (r *expenditureRepo) Delete(_ context.Context, id int64) error {
	delete(r.f.expenditures, id)
	return nil
}

func (r *expenditureRepo) List(_ context.Context, _ repository.LedgerFilter) ([]*entity.Expenditure, error) {
	var out []*entity.Expenditure
	for _, e := range r.f.expenditures {
		out = append(out, e)
	}
	return out, nil
}

// ── Actors ───────────────────────────────────────────────────────────────────

func int64ptr(v int64) *int64 { return &v }

var (
	adminActor     = scope.Actor{UserID: 1, Role: scope.RoleAdmin}
	commanderBase2 = scope.Actor{UserID: 2, Role: scope.RoleBaseCommander, BaseID: int64ptr(2)}
	logisticsBase1 = scope.Actor{UserID: 3, Role: scope.RoleLogisticsOfficer, BaseID: int64ptr(1)}
)

func newPurchaseUC(f *fixture) *ledger.PurchaseUseCase {
	return ledger.NewPurchaseUseCase(&txRunner{f}, &baseRepo{f}, &equipRepo{f}, &purchaseRepo{f})
}

func newTransferUC(f *fixture) *ledger.TransferUseCase {
	return ledger.NewTransferUseCase(&txRunner{f}, &baseRepo{f}, &equipRepo{f}, &transferRepo{f})
}

func newAssignmentUC(f *fixture) *ledger.AssignmentUseCase {
	return ledger.NewAssignmentUseCase(&txRunner{f}, &baseRepo{f}, &equipRepo{f}, &assignmentRepo{f})
}

func newExpenditureUC(f *fixture) *ledger.ExpenditureUseCase {
	return ledger.NewExpenditureUseCase(&txRunner{f}, &baseRepo{f}, &equipRepo{f}, &expenditureRepo{f})
}

// Package ledger implements the movement-ledger engine: the transactional use
// cases that record purchases, transfers, assignments and expenditures and keep
// asset_inventory consistent with them. Every inventory mutation happens inside
// the same transaction as the ledger row that caused it.
package ledger

import (
	"context"

	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
)

// Repos bundles the repositories bound to one transaction.
type Repos struct {
	Inventory    repository.InventoryRepository
	Purchases    repository.PurchaseRepository
	Transfers    repository.TransferRepository
	Assignments  repository.AssignmentRepository
	Expenditures repository.ExpenditureRepository
}

// TxRunner executes fn inside a database transaction, passing repositories
// bound to that transaction, and commits or rolls back as a unit. A failed fn
// leaves no partial inventory mutation behind.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

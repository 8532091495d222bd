// Package scope derives the effective base filter and write permissions for an
// acting user. It is pure: role and base come in, a filter or a domain error
// comes out, with no knowledge of the transport or the database.
package scope

import "github.com/jhoicas/asset-ledger-api/internal/domain"

// Roles.
const (
	RoleAdmin            = "admin"
	RoleBaseCommander    = "base_commander"
	RoleLogisticsOfficer = "logistics_officer"
)

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleBaseCommander || r == RoleLogisticsOfficer
}

// Actor is the identity tuple supplied by the auth layer. The core trusts it verbatim.
type Actor struct {
	UserID int64
	Role   string
	BaseID *int64 // assigned base; nil for admins
}

// Action is a write operation subject to the permission matrix.
type Action string

// Write actions.
const (
	ActionCreatePurchase    Action = "create_purchase"
	ActionReceivePurchase   Action = "receive_purchase"
	ActionCreateTransfer    Action = "create_transfer"
	ActionSetTransferStatus Action = "set_transfer_status"
	ActionCreateAssignment  Action = "create_assignment"
	ActionReturnAssignment  Action = "return_assignment"
	ActionCreateExpenditure Action = "create_expenditure"
	ActionDelete            Action = "delete"
)

// permissions is the role-to-action matrix for writes. Deletions of any ledger
// kind are admin only.
var permissions = map[Action][]string{
	ActionCreatePurchase:    {RoleAdmin, RoleLogisticsOfficer, RoleBaseCommander},
	ActionReceivePurchase:   {RoleAdmin, RoleLogisticsOfficer},
	ActionCreateTransfer:    {RoleAdmin, RoleLogisticsOfficer, RoleBaseCommander},
	ActionSetTransferStatus: {RoleAdmin, RoleBaseCommander, RoleLogisticsOfficer},
	ActionCreateAssignment:  {RoleAdmin, RoleBaseCommander},
	ActionReturnAssignment:  {RoleAdmin, RoleBaseCommander},
	ActionCreateExpenditure: {RoleAdmin, RoleBaseCommander},
	ActionDelete:            {RoleAdmin},
}

// Allowed reports whether the role may perform the action at all.
func Allowed(role string, action Action) bool {
	for _, r := range permissions[action] {
		if r == role {
			return true
		}
	}
	return false
}

// ResolveBase returns the effective base filter for a read. Admins keep the
// requested value (nil means global); everyone else is forced to their own base.
func ResolveBase(actor Actor, requested *int64) *int64 {
	if actor.Role == RoleAdmin {
		return requested
	}
	return actor.BaseID
}

// CheckWrite authorizes a write action that targets baseID. It verifies the
// permission matrix first, then base confinement for non-admin roles.
func CheckWrite(actor Actor, action Action, baseID int64) error {
	if !Allowed(actor.Role, action) {
		return domain.ErrForbidden
	}
	if actor.Role == RoleAdmin {
		return nil
	}
	if actor.BaseID == nil || *actor.BaseID != baseID {
		return domain.ErrForbidden
	}
	return nil
}

// CheckTransferAccess authorizes a write on an existing transfer: non-admins
// must be assigned to one of the two bases involved.
func CheckTransferAccess(actor Actor, action Action, fromBaseID, toBaseID int64) error {
	if !Allowed(actor.Role, action) {
		return domain.ErrForbidden
	}
	if actor.Role == RoleAdmin {
		return nil
	}
	if actor.BaseID == nil || (*actor.BaseID != fromBaseID && *actor.BaseID != toBaseID) {
		return domain.ErrForbidden
	}
	return nil
}

// Package access decides which operations a session's role permits.
package access

import (
	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"

	"github.com/pkg/errors"
)

// Operation names a gated operation.
type Operation string

const (
	OperationDeleteAsset Operation = "delete_asset"
	OperationExport      Operation = "export"
	OperationListUsers   Operation = "list_users"
	OperationChangeRole  Operation = "change_role"
)

// CanDelete reports whether role may delete asset records.
func CanDelete(role entity.Role) bool {
	return role == entity.RoleAdmin
}

// CanExport reports whether role may export the inventory.
func CanExport(role entity.Role) bool {
	return role == entity.RoleAdmin
}

// CanChangeRole reports whether role may list profiles and change roles.
func CanChangeRole(role entity.Role) bool {
	return role == entity.RoleAdmin
}

// Allowed evaluates op against the effective role of session. Sessions whose
// role is not yet resolved are denied everything.
func Allowed(session *entity.Session, op Operation) bool {
	role := session.EffectiveRole()

	switch op {
	case OperationDeleteAsset:
		return CanDelete(role)
	case OperationExport:
		return CanExport(role)
	case OperationListUsers, OperationChangeRole:
		return CanChangeRole(role)
	default:
		return false
	}
}

// Authorize returns ErrUnauthenticated for signed-out sessions and
// ErrPermissionDenied when the role does not permit op.
func Authorize(session *entity.Session, op Operation) error {
	if !session.IsAuthenticated() {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if !Allowed(session, op) {
		return errors.Wrapf(domainerrors.ErrPermissionDenied, "operation %s", op)
	}

	return nil
}

// Capabilities is the set of gated operations a session may perform.
type Capabilities struct {
	CanDelete     bool `json:"can_delete"`
	CanExport     bool `json:"can_export"`
	CanChangeRole bool `json:"can_change_role"`
}

// CapabilitiesOf evaluates every gate for session.
func CapabilitiesOf(session *entity.Session) Capabilities {
	role := session.EffectiveRole()

	return Capabilities{
		CanDelete:     CanDelete(role),
		CanExport:     CanExport(role),
		CanChangeRole: CanChangeRole(role),
	}
}

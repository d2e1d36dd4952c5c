// Package policy centralizes tenant scoping and write authorization.
// Every query filter and cross-company write check flows through here so
// endpoints cannot drift in how they enforce company isolation.
package policy

import (
	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
)

// Actor is the authenticated caller as seen by the policy evaluator.
type Actor struct {
	UserID    string
	CompanyID string
	Role      user.Role
}

// Scope is the implicit filter ANDed into every list/query operation.
// A nil CompanyID means unscoped (admin). A non-nil UserID restricts the
// query to the caller's own records (employee role).
type Scope struct {
	CompanyID *string
	UserID    *string
}

// ScopeFor derives the query scope for an actor.
//   - employee: own records only, own company
//   - manager/hr: own company
//   - admin: unscoped, optionally narrowed to requestedCompanyID
func ScopeFor(actor Actor, requestedCompanyID *string) Scope {
	switch actor.Role {
	case user.RoleAdmin:
		if requestedCompanyID != nil && *requestedCompanyID != "" {
			return Scope{CompanyID: requestedCompanyID}
		}
		return Scope{}
	case user.RoleManager, user.RoleHR:
		companyID := actor.CompanyID
		return Scope{CompanyID: &companyID}
	default:
		companyID := actor.CompanyID
		userID := actor.UserID
		return Scope{CompanyID: &companyID, UserID: &userID}
	}
}

// CanAccessCompany reports whether the actor may touch resources owned by
// targetCompanyID. Rejected before any existence check so a cross-tenant
// probe cannot distinguish "forbidden" from "absent".
func CanAccessCompany(actor Actor, targetCompanyID string) error {
	if actor.Role == user.RoleAdmin {
		return nil
	}
	if actor.CompanyID != targetCompanyID {
		return ErrCrossCompanyAccess
	}
	return nil
}

// CanAccessUserRecords reports whether the actor may read records owned by
// another user of targetCompanyID.
func CanAccessUserRecords(actor Actor, targetUserID, targetCompanyID string) error {
	if actor.UserID == targetUserID {
		return nil
	}
	if !user.HasPermission(actor.Role, user.PermissionTimeRecordViewAll) {
		return ErrSelfOnly
	}
	return CanAccessCompany(actor, targetCompanyID)
}

// CanReview reports whether the actor may approve/reject requests of
// targetCompanyID.
func CanReview(actor Actor, targetCompanyID string) error {
	if !user.HasPermission(actor.Role, user.PermissionAbsenceReview) {
		return ErrReviewerRoleRequired
	}
	return CanAccessCompany(actor, targetCompanyID)
}

// CanManageEmployee reports whether the actor may create/update/deactivate
// an employee of targetCompanyID.
func CanManageEmployee(actor Actor, targetCompanyID string) error {
	if !user.HasPermission(actor.Role, user.PermissionEmployeeManage) {
		return ErrManagementRoleRequired
	}
	return CanAccessCompany(actor, targetCompanyID)
}

// CanAssignRole limits which roles an actor may hand out: only admins may
// create managers/hr/admins, hr may only create employees.
func CanAssignRole(actor Actor, target user.Role) error {
	if target == user.RoleEmployee {
		return nil
	}
	if actor.Role != user.RoleAdmin {
		return ErrRoleAssignmentDenied
	}
	return nil
}

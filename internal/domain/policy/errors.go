package policy

import "errors"

var (
	ErrCrossCompanyAccess     = errors.New("access to another company's resources denied")
	ErrSelfOnly               = errors.New("only own records can be accessed")
	ErrReviewerRoleRequired   = errors.New("reviewer role required")
	ErrManagementRoleRequired = errors.New("employee management role required")
	ErrRoleAssignmentDenied   = errors.New("not allowed to assign this role")
)

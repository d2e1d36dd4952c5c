package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Time Records
	PermissionTimeRecordCreate  Permission = "timerecord.create"
	PermissionTimeRecordViewOwn Permission = "timerecord.view_own"
	PermissionTimeRecordViewAll Permission = "timerecord.view_all"

	// Absences
	PermissionAbsenceCreate  Permission = "absence.create"
	PermissionAbsenceViewOwn Permission = "absence.view_own"
	PermissionAbsenceViewAll Permission = "absence.view_all"
	PermissionAbsenceReview  Permission = "absence.review"

	// Tickets
	PermissionTicketCreate  Permission = "ticket.create"
	PermissionTicketRespond Permission = "ticket.respond"
	PermissionTicketResolve Permission = "ticket.resolve"

	// Adjustments
	PermissionAdjustmentCreate Permission = "adjustment.create"
	PermissionAdjustmentReview Permission = "adjustment.review"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Company Management
	PermissionCompanyManage Permission = "company.manage"

	// Reports
	PermissionStatsView Permission = "stats.view"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionTimeRecordCreate,
		PermissionTimeRecordViewOwn,
		PermissionAbsenceCreate,
		PermissionAbsenceViewOwn,
		PermissionTicketCreate,
		PermissionTicketRespond,
		PermissionAdjustmentCreate,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionTimeRecordCreate,
		PermissionTimeRecordViewOwn,
		PermissionTimeRecordViewAll,
		PermissionAbsenceCreate,
		PermissionAbsenceViewOwn,
		PermissionAbsenceViewAll,
		PermissionAbsenceReview,
		PermissionTicketCreate,
		PermissionTicketRespond,
		PermissionTicketResolve,
		PermissionAdjustmentCreate,
		PermissionAdjustmentReview,
		PermissionEmployeeViewAll,
		PermissionStatsView,
	},
	RoleHR: {
		PermissionViewOwnProfile,
		PermissionTimeRecordCreate,
		PermissionTimeRecordViewOwn,
		PermissionTimeRecordViewAll,
		PermissionAbsenceCreate,
		PermissionAbsenceViewOwn,
		PermissionAbsenceViewAll,
		PermissionAbsenceReview,
		PermissionTicketCreate,
		PermissionTicketRespond,
		PermissionTicketResolve,
		PermissionAdjustmentCreate,
		PermissionAdjustmentReview,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionStatsView,
	},
	RoleAdmin: {
		// Admin has all permissions
		PermissionViewOwnProfile,
		PermissionTimeRecordCreate,
		PermissionTimeRecordViewOwn,
		PermissionTimeRecordViewAll,
		PermissionAbsenceCreate,
		PermissionAbsenceViewOwn,
		PermissionAbsenceViewAll,
		PermissionAbsenceReview,
		PermissionTicketCreate,
		PermissionTicketRespond,
		PermissionTicketResolve,
		PermissionAdjustmentCreate,
		PermissionAdjustmentReview,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionCompanyManage,
		PermissionStatsView,
		PermissionUserManage,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}

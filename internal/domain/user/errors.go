package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrCPFExists              = errors.New("cpf already registered")
	ErrAccountDisabled        = errors.New("account disabled")
	ErrDeviceLimitReached     = errors.New("maximum number of authorized devices reached")
	ErrDeviceNotAuthorized    = errors.New("device not authorized")
	ErrDeviceIDRequired       = errors.New("device id required")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrInsufficientRole       = errors.New("insufficient role for this action")
)

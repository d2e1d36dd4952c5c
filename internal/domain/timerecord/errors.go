package timerecord

import "errors"

var (
	ErrInvalidRecordType  = errors.New("invalid time record type")
	ErrRecordNotFound     = errors.New("time record not found")
	ErrUnauthorizedAccess = errors.New("unauthorized to access this time record")
)

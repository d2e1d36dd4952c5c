package ticket

import "errors"

var (
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrTicketAlreadyClosed = errors.New("ticket is already resolved or closed")
	ErrResponseOnClosed    = errors.New("cannot respond to a closed ticket")
)

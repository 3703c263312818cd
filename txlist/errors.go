package txlist

import "errors"

var (
	// ErrTransactionClosed signals the use of a committed, rolled back or
	// superseded transaction.
	ErrTransactionClosed = errors.New("txlist: transaction closed")
	// ErrNoTransaction signals the use of a nil or zero transaction.
	ErrNoTransaction = errors.New("txlist: no transaction in progress")
)

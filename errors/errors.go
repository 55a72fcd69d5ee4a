package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrSubscriptionClosed = fmt.Errorf("subscription closed")
	ErrInvalidSession     = fmt.Errorf("invalid session")
)

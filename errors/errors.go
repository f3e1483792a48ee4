package errors

import "fmt"

var (
	ErrInvalidInput      = fmt.Errorf("invalid input")
	ErrNotFound          = fmt.Errorf("not found")
	ErrResourceExhausted = fmt.Errorf("resource exhausted")
	ErrHubClosed         = fmt.Errorf("hub closed")
	ErrSubscriberClosed  = fmt.Errorf("subscriber closed")
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrInvalidPayload    = fmt.Errorf("invalid event payload")
)

package syncer

import "fmt"

// Status classifies the outcome of one sync operation.
type Status string

const (
	StatusSuccess          Status = "success"
	StatusNothingToSync    Status = "nothing_to_sync"
	StatusNotAuthenticated Status = "not_authenticated"
	StatusError            Status = "error"
)

// Result is the outcome of one upload or download. Failures are carried as
// values; the reconciler never panics on remote errors.
type Result struct {
	Status  Status
	Count   int
	Message string
}

// Success reports a completed operation covering count items.
func Success(count int) Result {
	return Result{Status: StatusSuccess, Count: count}
}

// NothingToSync reports that no work was pending.
func NothingToSync() Result {
	return Result{Status: StatusNothingToSync}
}

// NotAuthenticated reports rejected credentials.
func NotAuthenticated() Result {
	return Result{Status: StatusNotAuthenticated}
}

// Errorf reports a transport, server, or storage failure.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

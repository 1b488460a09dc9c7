package cli

import "errors"

// ErrUsage marks errors caused by bad invocations: unknown flags, malformed
// config files, or impossible domain/format selections. cmd/schemagen checks
// for it with errors.Is to pick the exit code; everything else (emitter I/O
// failures and the like) reports as an ordinary error.
var ErrUsage = errors.New("cli usage error")

type usageError struct {
	msg string
}

func newUsageError(msg string) error {
	return usageError{msg: msg}
}

func (e usageError) Error() string {
	return e.msg
}

// Is lets callers match any usage error via errors.Is(err, ErrUsage) without
// exporting the concrete type.
func (e usageError) Is(target error) bool {
	return target == ErrUsage
}

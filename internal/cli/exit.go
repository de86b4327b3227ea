package cli

import (
	"context"
	"errors"
	"io"

	errs "github.com/matzehuels/paperbox/pkg/errors"
)

// Process exit statuses.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitCanceled = 130 // shell convention for SIGINT
)

// ExitCode maps an error returned by [CLI.Run] to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errs.IsUsage(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// PrintError writes the user-facing message for err to w.
// Cancellation is reported as a short notice.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		printError(w, "interrupted")
		return
	}
	printError(w, "%s", errs.UserMessage(err))
}

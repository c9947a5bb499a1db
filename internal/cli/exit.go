package cli

import "errors"

// Process exit codes. These are part of the CLI contract and scripts depend
// on them.
const (
	ExitOK        = 0  // success or help
	ExitUsage     = 1  // bad arguments, not a block device, missing tools
	ExitElevation = 2  // privilege elevation failed
	ExitDeclined  = 3  // user declined, or no GRUB installer found
	ExitProvision = 10 // any failure from partitioning onward
)

// ExitError carries the process exit code for a failed run. Silent errors
// produce no message, only the code (a declined confirmation is not an
// error worth reporting).
type ExitError struct {
	Code   int
	Err    error
	Silent bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "aborted"
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// CodeOf extracts the exit code from err, defaulting to ExitUsage for plain
// errors (e.g. flag parsing failures out of cobra).
func CodeOf(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

// IsSilent reports whether err should terminate the process without a
// message.
func IsSilent(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Silent
}

package system

import (
	"fmt"
	"os/exec"
	"strings"
)

// MissingProviderError reports that none of the interchangeable binaries for
// a tool could be found on PATH.
type MissingProviderError struct {
	Names []string
}

func (e *MissingProviderError) Error() string {
	return fmt.Sprintf("none of the candidate binaries found on PATH: %s",
		strings.Join(e.Names, ", "))
}

// lookPath is swapped out in tests.
var lookPath = exec.LookPath

// ResolveBinary returns the first of the candidate binary names found on
// PATH. The list is ordered by preference.
func ResolveBinary(names ...string) (string, error) {
	for _, name := range names {
		if _, err := lookPath(name); err == nil {
			return name, nil
		}
	}
	return "", &MissingProviderError{Names: names}
}

// CheckRequiredBinaries verifies that every named binary is on PATH and
// returns the missing ones.
func CheckRequiredBinaries(names ...string) []string {
	var missing []string
	for _, name := range names {
		if _, err := lookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

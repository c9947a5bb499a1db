package system

import "fmt"

// CopyPath copies a file or directory tree into dest.
func CopyPath(r CommandRunner, src, dest string) error {
	if out, err := r.Run("cp", "-r", src, dest); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w\nOutput: %s", src, dest, err, out)
	}
	return nil
}

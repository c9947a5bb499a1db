package system

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// IsElevated reports whether the process runs with root privileges.
func IsElevated() bool {
	return os.Geteuid() == 0
}

// ReexecElevated replaces the current process with a sudo re-invocation of
// itself, preserving arguments. On success it never returns.
func ReexecElevated() error {
	sudo, err := exec.LookPath("sudo")
	if err != nil {
		return fmt.Errorf("sudo not found on PATH: %w", err)
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("cannot determine own executable: %w", err)
	}

	argv := append([]string{"sudo", exe}, os.Args[1:]...)
	if err := syscall.Exec(sudo, argv, os.Environ()); err != nil {
		return fmt.Errorf("failed to re-exec under sudo: %w", err)
	}
	return nil
}

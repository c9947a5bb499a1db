package system

import (
	"fmt"
	"os"
)

// MakeMountPoint creates a uniquely-named temporary mount directory.
func MakeMountPoint() (string, error) {
	dir, err := os.MkdirTemp("", "makeusb-")
	if err != nil {
		return "", fmt.Errorf("failed to create mount directory: %w", err)
	}
	return dir, nil
}

// Mount mounts the partition at dir.
func Mount(r CommandRunner, partition, dir string) error {
	if out, err := r.Run("mount", partition, dir); err != nil {
		return fmt.Errorf("failed to mount %s at %s: %w\nOutput: %s", partition, dir, err, out)
	}
	return nil
}

// ForceUnmount unmounts dir, forcing if necessary. Used during cleanup where
// failure is tolerated by the caller.
func ForceUnmount(r CommandRunner, dir string) error {
	if out, err := r.Run("umount", "-f", dir); err != nil {
		return fmt.Errorf("failed to unmount %s: %w\nOutput: %s", dir, err, out)
	}
	return nil
}

// RemoveMountPoint removes the temporary mount directory if it still exists.
func RemoveMountPoint(dir string) error {
	err := os.Remove(dir)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove mount directory %s: %w", dir, err)
	}
	return nil
}

package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateDevicePath validates that a string looks like a whole-disk block
// device path under /dev. It does not touch the filesystem; existence and
// block-device checks happen in the system package.
func ValidateDevicePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("device path cannot be empty")
	}

	if !strings.HasPrefix(path, "/dev/") {
		return fmt.Errorf("not a device path (must start with /dev/): %s", path)
	}

	name := strings.TrimPrefix(path, "/dev/")
	if name == "" {
		return fmt.Errorf("device path names no device: %s", path)
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("device path must name a device directly under /dev: %s", path)
	}

	if LooksLikePartition(path) {
		return fmt.Errorf("%s looks like a partition; use a whole disk (e.g. /dev/sdb) so the partition table can be recreated", path)
	}

	return nil
}

// LooksLikePartition returns true if the given /dev name appears to be a
// partition (e.g. /dev/sda1, /dev/mmcblk0p1) rather than a whole disk.
func LooksLikePartition(dev string) bool {
	name := strings.TrimPrefix(dev, "/dev/")
	if name == "" {
		return false
	}

	// mmcblk0p1, nvme0n1p2 style
	if strings.HasPrefix(name, "mmcblk") || strings.HasPrefix(name, "nvme") {
		if idx := strings.LastIndex(name, "p"); idx != -1 && idx < len(name)-1 {
			part := name[idx+1:]
			if _, err := strconv.Atoi(part); err == nil {
				return true
			}
		}
		return false
	}

	// sda1, sdb2 style
	last := name[len(name)-1]
	return last >= '0' && last <= '9'
}

// ValidateVolumeLabel validates a FAT volume label: at most 11 characters,
// uppercase letters, digits, underscore and hyphen.
func ValidateVolumeLabel(label string) error {
	if label == "" {
		return fmt.Errorf("volume label cannot be empty")
	}
	if len(label) > 11 {
		return fmt.Errorf("volume label too long (max 11 characters): %s", label)
	}

	for _, c := range label {
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-') {
			return fmt.Errorf("volume label contains invalid character (use A-Z, 0-9, _ or -): %s", label)
		}
	}

	return nil
}

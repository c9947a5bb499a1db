// Package system wraps the privileged system utilities makeusb drives:
// sfdisk, mkfs, mount, the GRUB installers and friends. Everything that
// shells out goes through CommandRunner so tests can substitute a mock.
package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsBlockDevice reports whether path names an existing block special file.
func IsBlockDevice(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	mode := info.Mode()
	return mode&os.ModeDevice != 0 && mode&os.ModeCharDevice == 0, nil
}

// PartitionNotFoundError reports a partition lookup that matched nothing.
// The attempted patterns are included so the user sees what was searched
// for, not an empty result.
type PartitionNotFoundError struct {
	Device   string
	Patterns []string
}

func (e *PartitionNotFoundError) Error() string {
	return fmt.Sprintf("no partition found for %s (tried %s)",
		e.Device, strings.Join(e.Patterns, ", "))
}

// PartitionAmbiguousError reports a partition lookup that matched more than
// one device node.
type PartitionAmbiguousError struct {
	Device  string
	Matches []string
}

func (e *PartitionAmbiguousError) Error() string {
	return fmt.Sprintf("multiple partition candidates for %s: %s",
		e.Device, strings.Join(e.Matches, ", "))
}

// FindPartition locates the device node for partition number n of device by
// listing devDir. Device naming differs per driver: /dev/sdb1 but
// /dev/mmcblk0p1, so both <base><n> and <base>p<n> are accepted. Exactly one
// match must exist.
func FindPartition(devDir, device string, n int) (string, error) {
	base := filepath.Base(device)
	candidates := []string{
		fmt.Sprintf("%s%d", base, n),
		fmt.Sprintf("%sp%d", base, n),
	}

	entries, err := os.ReadDir(devDir)
	if err != nil {
		return "", fmt.Errorf("failed to list %s: %w", devDir, err)
	}

	var matches []string
	for _, entry := range entries {
		for _, cand := range candidates {
			if entry.Name() == cand {
				matches = append(matches, filepath.Join(devDir, entry.Name()))
			}
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		patterns := make([]string, len(candidates))
		for i, cand := range candidates {
			patterns[i] = filepath.Join(devDir, cand)
		}
		return "", &PartitionNotFoundError{Device: device, Patterns: patterns}
	default:
		return "", &PartitionAmbiguousError{Device: device, Matches: matches}
	}
}

// MountedPartitions returns "device -> mountpoint" entries for every mounted
// partition of the given disk.
func MountedPartitions(r CommandRunner, device string) ([]string, error) {
	base := strings.TrimPrefix(device, "/dev/")

	out, err := r.Run("lsblk", "-nr", "-o", "NAME,MOUNTPOINT")
	if err != nil {
		return nil, fmt.Errorf("lsblk mount scan failed: %w", err)
	}

	var mounted []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		name, mnt := fields[0], fields[1]
		if mnt == "" || mnt == "-" {
			continue
		}
		if strings.HasPrefix(name, base) {
			mounted = append(mounted, fmt.Sprintf("/dev/%s -> %s", name, mnt))
		}
	}
	return mounted, nil
}

// UnmountAll force-unmounts every mounted partition of the disk. Failures
// are ignored; the device may legitimately have nothing mounted.
func UnmountAll(r CommandRunner, device string) {
	mounted, err := MountedPartitions(r, device)
	if err != nil {
		return
	}
	for _, entry := range mounted {
		dev, _, found := strings.Cut(entry, " -> ")
		if !found {
			continue
		}
		_, _ = r.Run("umount", "-f", dev)
	}
}

// DiskSizeBytes returns the size of a whole disk in bytes.
func DiskSizeBytes(r CommandRunner, device string) (uint64, error) {
	out, err := r.Run("lsblk", "-b", "-dn", "-o", "SIZE", device)
	if err != nil {
		return 0, fmt.Errorf("lsblk failed for %s: %w", device, err)
	}
	text := strings.TrimSpace(out)
	if text == "" {
		return 0, fmt.Errorf("lsblk returned empty size for %s", device)
	}
	var size uint64
	if _, err := fmt.Sscanf(text, "%d", &size); err != nil {
		return 0, fmt.Errorf("cannot parse lsblk size %q for %s: %w", text, device, err)
	}
	return size, nil
}

// IsRemovable reports whether the kernel flags the disk as removable. An
// unreadable sysfs entry counts as not removable.
func IsRemovable(device string) bool {
	base := filepath.Base(device)
	data, err := os.ReadFile(filepath.Join("/sys/block", base, "removable"))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "1"
}

// BlockDeviceInfo is one row of a device report.
type BlockDeviceInfo struct {
	Path       string
	Type       string
	Size       string
	Mountpoint string
}

// DescribeDevice returns the disk and its partitions as reported by lsblk.
func DescribeDevice(r CommandRunner, device string) ([]BlockDeviceInfo, error) {
	out, err := r.Run("lsblk", "-nr", "-o", "PATH,TYPE,SIZE,MOUNTPOINT", device)
	if err != nil {
		return nil, fmt.Errorf("lsblk failed for %s: %w", device, err)
	}

	var infos []BlockDeviceInfo
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		info := BlockDeviceInfo{Path: fields[0], Type: fields[1], Size: fields[2]}
		if len(fields) > 3 {
			info.Mountpoint = fields[3]
		}
		infos = append(infos, info)
	}
	return infos, nil
}

package system

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

func TestFindPartition(t *testing.T) {
	t.Run("sd style", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "sdb"))
		touch(t, filepath.Join(dir, "sdb1"))

		got, err := FindPartition(dir, "/dev/sdb", 1)
		if err != nil {
			t.Fatalf("FindPartition failed: %v", err)
		}
		want := filepath.Join(dir, "sdb1")
		if got != want {
			t.Errorf("FindPartition = %q, want %q", got, want)
		}
	})

	t.Run("mmc style", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "mmcblk0"))
		touch(t, filepath.Join(dir, "mmcblk0p1"))

		got, err := FindPartition(dir, "/dev/mmcblk0", 1)
		if err != nil {
			t.Fatalf("FindPartition failed: %v", err)
		}
		if filepath.Base(got) != "mmcblk0p1" {
			t.Errorf("FindPartition = %q, want mmcblk0p1", got)
		}
	})

	t.Run("not found reports attempted patterns", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "sdb"))

		_, err := FindPartition(dir, "/dev/sdb", 1)
		var notFound *PartitionNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected PartitionNotFoundError, got %v", err)
		}
		if !strings.Contains(err.Error(), "sdb1") || !strings.Contains(err.Error(), "sdbp1") {
			t.Errorf("error should name the attempted patterns, got: %v", err)
		}
		if !strings.Contains(err.Error(), "/dev/sdb") {
			t.Errorf("error should name the device, got: %v", err)
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "sdb1"))
		touch(t, filepath.Join(dir, "sdbp1"))

		_, err := FindPartition(dir, "/dev/sdb", 1)
		var ambiguous *PartitionAmbiguousError
		if !errors.As(err, &ambiguous) {
			t.Fatalf("expected PartitionAmbiguousError, got %v", err)
		}
		if len(ambiguous.Matches) != 2 {
			t.Errorf("expected 2 matches, got %d", len(ambiguous.Matches))
		}
	})
}

func TestMountedPartitions(t *testing.T) {
	runner := NewMockCommandRunner()
	runner.Responses["lsblk"] = MockResponse{
		Output: "sda \nsda1 /\nsdb \nsdb1 /mnt/usb\nsdb2 /mnt/data\n",
	}

	mounted, err := MountedPartitions(runner, "/dev/sdb")
	if err != nil {
		t.Fatalf("MountedPartitions failed: %v", err)
	}

	if len(mounted) != 2 {
		t.Fatalf("expected 2 mounted partitions, got %d: %v", len(mounted), mounted)
	}
	if mounted[0] != "/dev/sdb1 -> /mnt/usb" {
		t.Errorf("unexpected first entry: %s", mounted[0])
	}
}

func TestUnmountAll(t *testing.T) {
	runner := NewMockCommandRunner()
	runner.Responses["lsblk"] = MockResponse{Output: "sdb1 /mnt/usb\n"}
	runner.FailWith("umount", "target is busy")

	// Failures are swallowed
	UnmountAll(runner, "/dev/sdb")

	calls := runner.CallsTo("umount")
	if len(calls) != 1 {
		t.Fatalf("expected 1 umount call, got %d", len(calls))
	}
	if calls[0].Args[0] != "-f" || calls[0].Args[1] != "/dev/sdb1" {
		t.Errorf("unexpected umount args: %v", calls[0].Args)
	}
}

func TestDiskSizeBytes(t *testing.T) {
	runner := NewMockCommandRunner()
	runner.Responses["lsblk"] = MockResponse{Output: "15931539456\n"}

	size, err := DiskSizeBytes(runner, "/dev/sdb")
	if err != nil {
		t.Fatalf("DiskSizeBytes failed: %v", err)
	}
	if size != 15931539456 {
		t.Errorf("DiskSizeBytes = %d, want 15931539456", size)
	}
}

func TestDiskSizeBytesEmpty(t *testing.T) {
	runner := NewMockCommandRunner()
	runner.Responses["lsblk"] = MockResponse{Output: "  \n"}

	if _, err := DiskSizeBytes(runner, "/dev/sdb"); err == nil {
		t.Fatal("expected error for empty lsblk output")
	}
}

func TestIsBlockDevice(t *testing.T) {
	dir := t.TempDir()
	regular := filepath.Join(dir, "file")
	touch(t, regular)

	isBlock, err := IsBlockDevice(regular)
	if err != nil {
		t.Fatalf("IsBlockDevice failed: %v", err)
	}
	if isBlock {
		t.Error("regular file reported as block device")
	}

	isBlock, err = IsBlockDevice(filepath.Join(dir, "missing"))
	if err != nil {
		t.Fatalf("IsBlockDevice on missing path failed: %v", err)
	}
	if isBlock {
		t.Error("missing path reported as block device")
	}

	// /dev/null is a character device, not a block device
	if _, err := os.Stat("/dev/null"); err == nil {
		isBlock, err = IsBlockDevice("/dev/null")
		if err != nil {
			t.Fatalf("IsBlockDevice(/dev/null) failed: %v", err)
		}
		if isBlock {
			t.Error("/dev/null reported as block device")
		}
	}
}

func TestDescribeDevice(t *testing.T) {
	runner := NewMockCommandRunner()
	runner.Responses["lsblk"] = MockResponse{
		Output: "/dev/sdb disk 14.9G \n/dev/sdb1 part 14.9G /mnt/usb\n",
	}

	infos, err := DescribeDevice(runner, "/dev/sdb")
	if err != nil {
		t.Fatalf("DescribeDevice failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(infos))
	}
	if infos[1].Mountpoint != "/mnt/usb" {
		t.Errorf("expected mountpoint /mnt/usb, got %q", infos[1].Mountpoint)
	}
	if infos[0].Type != "disk" {
		t.Errorf("expected type disk, got %q", infos[0].Type)
	}
}

package system

import "fmt"

// sfdisk script: fresh DOS label with a single primary partition spanning
// the whole disk, type 0x0c (W95 FAT32 LBA).
const wholeDiskFATScript = "label: dos\n,,c\n"

// WipeSignatures clears all filesystem and partition-table signatures from
// the disk.
func WipeSignatures(r CommandRunner, device string) error {
	if out, err := r.Run("wipefs", "-a", device); err != nil {
		return fmt.Errorf("wipefs %s failed: %w\nOutput: %s", device, err, out)
	}
	return nil
}

// CreateSinglePartition writes a new partition table with one whole-disk FAT
// partition. sfdisk is driven with a declarative script on stdin rather than
// keystrokes piped at an interactive tool.
func CreateSinglePartition(r CommandRunner, device string) error {
	if out, err := r.RunWithInput(wholeDiskFATScript, "sfdisk", device); err != nil {
		return fmt.Errorf("sfdisk %s failed: %w\nOutput: %s", device, err, out)
	}
	return nil
}

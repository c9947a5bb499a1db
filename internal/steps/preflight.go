package steps

import (
	"fmt"

	"github.com/mbusb/makeusb/internal/common"
	"github.com/mbusb/makeusb/internal/system"
)

// requiredBinaries are the tools every run needs besides the resolved GRUB
// installer and FAT formatter.
var requiredBinaries = []string{"sfdisk", "wipefs", "lsblk", "mount", "umount", "chown", "cp"}

// ValidateArgs checks argument syntax: the device path shape and the volume
// label. Runs before privilege elevation.
func (p *Pipeline) ValidateArgs() error {
	if err := common.ValidateDevicePath(p.Device); err != nil {
		return err
	}
	return common.ValidateVolumeLabel(p.Label)
}

// ValidateDevice checks that the target names an existing block special
// file. Runs after elevation, before anything touches the disk.
func (p *Pipeline) ValidateDevice() error {
	isBlock, err := system.IsBlockDevice(p.Device)
	if err != nil {
		return err
	}
	if !isBlock {
		return fmt.Errorf("%s is not a block device", p.Device)
	}
	return nil
}

// ResolveInstaller finds a GRUB installer binary. Kept separate from the
// rest of preflight because its absence has a dedicated exit status.
func (p *Pipeline) ResolveInstaller() error {
	grub, err := system.ResolveGrubInstaller(p.Runner)
	if err != nil {
		return err
	}
	p.Grub = grub
	p.UI.Infof("Using bootloader installer: %s", grub.Binary())
	return nil
}

// Preflight resolves the remaining tool providers and unmounts anything
// still mounted from the device.
func (p *Pipeline) Preflight() error {
	p.UI.Step("Checking required tools")

	mkfs, err := system.ResolveFormatter(p.Runner)
	if err != nil {
		return fmt.Errorf("no FAT formatter available: %w", err)
	}
	p.Mkfs = mkfs
	p.UI.Infof("Using FAT formatter: %s", mkfs.Binary())

	if missing := system.CheckRequiredBinaries(requiredBinaries...); len(missing) > 0 {
		return fmt.Errorf("missing required commands: %v", missing)
	}

	if !system.IsRemovable(p.Device) {
		p.UI.Warningf("%s is not flagged removable by the kernel", p.Device)
		if !p.AssumeYes {
			cont, err := p.UI.PromptYesNo("Device does not look like a USB stick. Continue anyway?", false)
			if err != nil || !cont {
				return ErrDeclined
			}
		}
	}

	if mounted, err := system.MountedPartitions(p.Runner, p.Device); err == nil && len(mounted) > 0 {
		p.UI.Infof("Unmounting %d mounted partition(s) of %s", len(mounted), p.Device)
		system.UnmountAll(p.Runner, p.Device)
	}

	return nil
}

package steps

import (
	"fmt"
	"path/filepath"

	"github.com/mbusb/makeusb/internal/system"
)

// Provision wipes and repartitions the device, formats the new partition and
// mounts it. From here on every failure is fatal and the device stays in
// whatever state the failing operation left it.
func (p *Pipeline) Provision() error {
	p.UI.Step(fmt.Sprintf("Partitioning %s", p.Device))

	if err := system.WipeSignatures(p.Runner, p.Device); err != nil {
		p.UI.Warningf("wipefs reported: %v", err)
	}

	// Known risk: some partitioners return spurious non-zero status after a
	// successful write, so a failure here only warns. The partition lookup
	// below is the authoritative check.
	if err := system.CreateSinglePartition(p.Runner, p.Device); err != nil {
		p.UI.Warningf("partitioning reported: %v", err)
	}

	partition, err := system.FindPartition(p.devDir, p.Device, 1)
	if err != nil {
		return err
	}
	p.Partition = partition
	p.UI.Successf("Created partition %s", partition)

	p.UI.Step(fmt.Sprintf("Formatting %s as FAT32 (label %s)", partition, p.Label))
	if err := p.Mkfs.FormatFAT32(partition, p.Label); err != nil {
		return err
	}

	mountDir, err := system.MakeMountPoint()
	if err != nil {
		return err
	}
	p.MountDir = mountDir
	p.BootDir = filepath.Join(mountDir, "boot")

	// The mount directory outlives any failure from here; tear it down on
	// every exit path. Ownership restoration must run before the unmount.
	p.Clean.Push(func() {
		if owner := system.InvokingUser(p.Runner); owner != "" {
			_ = system.RestoreOwnership(p.Runner, p.MountDir, owner)
		}
		_ = system.ForceUnmount(p.Runner, p.MountDir)
		_ = system.RemoveMountPoint(p.MountDir)
	})

	if err := system.Mount(p.Runner, partition, mountDir); err != nil {
		return err
	}
	p.UI.Successf("Mounted %s at %s", partition, mountDir)

	return nil
}

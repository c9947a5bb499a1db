// Package steps implements the makeusb pipeline: validate, confirm,
// partition, format, mount, install bootloaders, stage configuration, fetch
// memdisk. Stages are methods on Pipeline and must run in order; each stage
// leaves its results on the Pipeline for the next one.
package steps

import (
	"github.com/mbusb/makeusb/internal/config"
	"github.com/mbusb/makeusb/internal/system"
	"github.com/mbusb/makeusb/internal/ui"
)

// Pipeline holds the run state threaded through every stage. There is no
// rollback: once Provision has started, a failure leaves the device exactly
// as the failing stage left it.
type Pipeline struct {
	Config *config.Config
	UI     *ui.UI
	Runner system.CommandRunner
	Clean  *CleanupStack

	// Inputs
	Device    string
	Label     string
	AssumeYes bool

	// Resolved during Preflight
	Grub *system.GrubInstaller
	Mkfs *system.Formatter

	// Established as stages run
	Partition string
	MountDir  string
	BootDir   string
	VendorDir string

	// Device directory scanned for the new partition; fixed to /dev outside
	// of tests.
	devDir string
}

// NewPipeline creates a pipeline for the given device.
func NewPipeline(cfg *config.Config, u *ui.UI, r system.CommandRunner, device string) *Pipeline {
	return &Pipeline{
		Config: cfg,
		UI:     u,
		Runner: r,
		Clean:  NewCleanupStack(),
		Device: device,
		Label:  cfg.GetOrDefault(config.KeyVolumeLabel, "MULTIBOOT"),
		devDir: "/dev",
	}
}

package cli

import (
	"errors"
	"fmt"

	"github.com/mbusb/makeusb/internal/steps"
	"github.com/mbusb/makeusb/internal/system"
)

// MakeOptions are the user-facing knobs for a make run.
type MakeOptions struct {
	Device     string
	Label      string
	AssumeYes  bool
	Trace      bool
	StagingDir string
}

// RunMake executes the whole pipeline against opts.Device. Stage failures
// come back as *ExitError so main can exit with the contractual code.
func RunMake(ctx *MakeContext, opts MakeOptions) error {
	if opts.Trace {
		ctx.Runner.EnableTracing()
	}

	p := steps.NewPipeline(ctx.Config, ctx.UI, ctx.Runner, opts.Device)
	if opts.Label != "" {
		p.Label = opts.Label
	}
	p.AssumeYes = opts.AssumeYes

	if err := p.ValidateArgs(); err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	// Everything from partitioning onward needs root; re-exec early so the
	// confirmation prompts run exactly once.
	if !system.IsElevated() {
		ctx.UI.Info("Elevated privileges required, re-executing under sudo")
		if err := system.ReexecElevated(); err != nil {
			return &ExitError{Code: ExitElevation, Err: err}
		}
	}

	if err := p.ValidateDevice(); err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	if err := p.ResolveInstaller(); err != nil {
		return &ExitError{Code: ExitDeclined, Err: err}
	}

	if err := p.Preflight(); err != nil {
		if errors.Is(err, steps.ErrDeclined) {
			return &ExitError{Code: ExitDeclined, Silent: true}
		}
		return &ExitError{Code: ExitUsage, Err: err}
	}

	if err := p.Confirm(); err != nil {
		return &ExitError{Code: ExitDeclined, Silent: true}
	}

	// Destructive stages: cleanup always runs, command tracing always on.
	defer p.Clean.Run()
	p.Clean.RunOnSignals(ctx.UI)
	ctx.Runner.EnableTracing()

	stages := []func() error{
		p.Provision,
		p.InstallBootloaders,
		func() error { return p.Stage(opts.StagingDir) },
		p.FetchMemdisk,
	}
	for _, stage := range stages {
		if err := stage(); err != nil {
			return &ExitError{Code: ExitProvision, Err: err}
		}
	}

	ctx.UI.Header("Done")
	ctx.UI.Successf("%s is ready. Drop ISO images into boot/isos on the device.", opts.Device)
	return nil
}

// RunInspect prints a non-destructive report of the device.
func RunInspect(ctx *MakeContext, device string) error {
	isBlock, err := system.IsBlockDevice(device)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}
	if !isBlock {
		return &ExitError{Code: ExitUsage, Err: fmt.Errorf("%s is not a block device", device)}
	}

	ctx.UI.Header(fmt.Sprintf("Device report: %s", device))

	if size, err := system.DiskSizeBytes(ctx.Runner, device); err == nil {
		ctx.UI.Infof("Size: %d bytes (%.1f GiB)", size, float64(size)/(1<<30))
	}
	if system.IsRemovable(device) {
		ctx.UI.Info("Removable: yes")
	} else {
		ctx.UI.Warning("Removable: no")
	}

	infos, err := system.DescribeDevice(ctx.Runner, device)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	ctx.UI.Separator()
	for _, info := range infos {
		line := fmt.Sprintf("%-16s %-6s %8s", info.Path, info.Type, info.Size)
		if info.Mountpoint != "" {
			line += "  mounted at " + info.Mountpoint
		}
		ctx.UI.Print(line)
	}

	return nil
}

// Package cli wires the makeusb pipeline to the command-line surface: it
// owns dependency construction, stage ordering and the mapping from stage
// failures to process exit codes.
package cli

import (
	"github.com/mbusb/makeusb/internal/config"
	"github.com/mbusb/makeusb/internal/system"
	"github.com/mbusb/makeusb/internal/ui"
)

// MakeContext holds the dependencies shared by all commands.
type MakeContext struct {
	Config *config.Config
	UI     *ui.UI
	Runner *system.ExecCommandRunner
}

// NewMakeContext creates a MakeContext with all dependencies initialized.
func NewMakeContext() (*MakeContext, error) {
	cfg := config.New("")
	if err := cfg.Load(); err != nil {
		return nil, err
	}

	return &MakeContext{
		Config: cfg,
		UI:     ui.New(),
		Runner: system.NewCommandRunner(),
	}, nil
}

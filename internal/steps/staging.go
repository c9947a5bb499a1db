package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mbusb/makeusb/internal/system"
)

// Staging inputs expected in the working directory.
const (
	mainConfigFile    = "mbusb.cfg"
	fragmentDir       = "mbusb.d"
	exampleConfigFile = "grub.cfg.example"
	grubConfigFile    = "grub.cfg"
	isosDirName       = "isos"
)

// Stage populates the boot tree: the isos directory plus the menu
// configuration copied from the working directory into the GRUB vendor
// directory. The example config also becomes the live grub.cfg.
func (p *Pipeline) Stage(srcDir string) error {
	p.UI.Step("Staging boot configuration")

	isosDir := filepath.Join(p.BootDir, isosDirName)
	if err := os.MkdirAll(isosDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", isosDir, err)
	}

	inputs := []string{mainConfigFile, fragmentDir, exampleConfigFile}
	for _, name := range inputs {
		src := filepath.Join(srcDir, name)
		if _, err := os.Stat(src); err != nil {
			return fmt.Errorf("staging input missing: %w", err)
		}
		if err := system.CopyPath(p.Runner, src, p.VendorDir); err != nil {
			return err
		}
	}

	example := filepath.Join(p.VendorDir, exampleConfigFile)
	live := filepath.Join(p.VendorDir, grubConfigFile)
	if err := system.CopyPath(p.Runner, example, live); err != nil {
		return err
	}

	p.UI.Successf("Boot configuration staged into %s", p.VendorDir)
	return nil
}

package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// grubBinaries lists the interchangeable GRUB installer names in preference
// order. Fedora-family systems ship grub2-install, Debian-family systems
// ship grub-install.
var grubBinaries = []string{"grub2-install", "grub-install"}

// GrubInstaller installs GRUB images using whichever installer binary was
// found at startup.
type GrubInstaller struct {
	bin    string
	runner CommandRunner
}

// NewGrubInstaller creates a GrubInstaller around a specific installer
// binary.
func NewGrubInstaller(bin string, r CommandRunner) *GrubInstaller {
	return &GrubInstaller{bin: bin, runner: r}
}

// ResolveGrubInstaller finds a GRUB installer on PATH.
func ResolveGrubInstaller(r CommandRunner) (*GrubInstaller, error) {
	bin, err := ResolveBinary(grubBinaries...)
	if err != nil {
		return nil, err
	}
	return NewGrubInstaller(bin, r), nil
}

// Binary returns the resolved installer binary name.
func (g *GrubInstaller) Binary() string {
	return g.bin
}

// InstallEFI installs the UEFI bootloader image set into the mount root,
// marked removable so firmware finds it at the fallback path.
func (g *GrubInstaller) InstallEFI(target, mountDir, bootDir string) error {
	out, err := g.runner.Run(g.bin,
		"--target="+target,
		"--efi-directory="+mountDir,
		"--boot-directory="+bootDir,
		"--removable")
	if err != nil {
		return fmt.Errorf("%s EFI install failed: %w\nOutput: %s", g.bin, err, out)
	}
	return nil
}

// InstallBIOS installs the legacy MBR bootloader onto the whole device.
func (g *GrubInstaller) InstallBIOS(target, device, bootDir string) error {
	out, err := g.runner.Run(g.bin,
		"--target="+target,
		"--boot-directory="+bootDir,
		device)
	if err != nil {
		return fmt.Errorf("%s BIOS install failed: %w\nOutput: %s", g.bin, err, out)
	}
	return nil
}

// VendorDirNotFoundError reports that no GRUB vendor directory exists under
// the boot directory after installation.
type VendorDirNotFoundError struct {
	BootDir string
}

func (e *VendorDirNotFoundError) Error() string {
	return fmt.Sprintf("no grub directory found under %s", e.BootDir)
}

// VendorDirAmbiguousError reports that several GRUB vendor directories exist
// where exactly one is expected.
type VendorDirAmbiguousError struct {
	BootDir string
	Matches []string
}

func (e *VendorDirAmbiguousError) Error() string {
	return fmt.Sprintf("multiple grub directories under %s: %s",
		e.BootDir, strings.Join(e.Matches, ", "))
}

// FindVendorDir locates the directory the GRUB installer created under
// bootDir. Its name varies by vendor ("grub" or "grub2"), so it is
// discovered rather than hardcoded, and the lookup must be unambiguous.
func FindVendorDir(bootDir string) (string, error) {
	entries, err := os.ReadDir(bootDir)
	if err != nil {
		return "", fmt.Errorf("failed to list %s: %w", bootDir, err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), "grub") {
			matches = append(matches, filepath.Join(bootDir, entry.Name()))
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", &VendorDirNotFoundError{BootDir: bootDir}
	default:
		return "", &VendorDirAmbiguousError{BootDir: bootDir, Matches: matches}
	}
}

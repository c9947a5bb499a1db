package steps

import (
	"github.com/mbusb/makeusb/internal/config"
	"github.com/mbusb/makeusb/internal/system"
)

// InstallBootloaders installs GRUB for both firmware boot modes, sharing one
// boot directory on the target filesystem.
func (p *Pipeline) InstallBootloaders() error {
	efiTarget := p.Config.GetOrDefault(config.KeyEFITarget, "x86_64-efi")
	biosTarget := p.Config.GetOrDefault(config.KeyBIOSTarget, "i386-pc")

	p.UI.Step("Installing UEFI bootloader (" + efiTarget + ")")
	if err := p.Grub.InstallEFI(efiTarget, p.MountDir, p.BootDir); err != nil {
		return err
	}
	p.UI.Success("UEFI bootloader installed")

	p.UI.Step("Installing BIOS bootloader (" + biosTarget + ")")
	if err := p.Grub.InstallBIOS(biosTarget, p.Device, p.BootDir); err != nil {
		return err
	}
	p.UI.Success("BIOS bootloader installed")

	vendorDir, err := system.FindVendorDir(p.BootDir)
	if err != nil {
		return err
	}
	p.VendorDir = vendorDir

	return nil
}

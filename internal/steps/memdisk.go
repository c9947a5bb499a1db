package steps

import (
	"path/filepath"

	"github.com/mbusb/makeusb/internal/config"
	"github.com/mbusb/makeusb/internal/system"
)

// FetchMemdisk downloads the syslinux release tarball and drops the memdisk
// boot helper into the GRUB vendor directory. memdisk is what lets the menu
// boot floppy and small disk images.
func (p *Pipeline) FetchMemdisk() error {
	url := p.Config.GetOrDefault(config.KeySyslinuxURL, "")
	member := p.Config.GetOrDefault(config.KeyMemdiskMember, "")

	p.UI.Step("Fetching memdisk from syslinux release")
	p.UI.Infof("Downloading %s", url)

	if err := system.FetchTarMember(url, member, p.VendorDir); err != nil {
		return err
	}

	p.UI.Successf("memdisk installed at %s", filepath.Join(p.VendorDir, filepath.Base(member)))
	return nil
}

package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Target filesystem configuration
	KeyVolumeLabel = "VOLUME_LABEL"

	// Syslinux release used as the memdisk source
	KeySyslinuxURL   = "SYSLINUX_URL"
	KeyMemdiskMember = "MEMDISK_MEMBER"

	// Bootloader configuration
	KeyEFITarget  = "EFI_TARGET"
	KeyBIOSTarget = "BIOS_TARGET"

	// System configuration
	KeyConfigVersion = "CONFIG_VERSION"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyVolumeLabel:   "MULTIBOOT",
	KeySyslinuxURL:   "https://mirrors.edge.kernel.org/pub/linux/utils/boot/syslinux/syslinux-6.03.tar.gz",
	KeyMemdiskMember: "syslinux-6.03/bios/memdisk/memdisk",
	KeyEFITarget:     "x86_64-efi",
	KeyBIOSTarget:    "i386-pc",
	KeyConfigVersion: "1",
}

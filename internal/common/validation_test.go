package common

import "testing"

func TestValidateDevicePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid sd device", "/dev/sdb", false},
		{"valid nvme device", "/dev/nvme0n1", false},
		{"valid mmc device", "/dev/mmcblk0", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"not under dev", "/tmp/sdb", true},
		{"bare name", "sdb", true},
		{"dev root only", "/dev/", true},
		{"nested path", "/dev/disk/by-id/usb-foo", true},
		{"partition sd", "/dev/sdb1", true},
		{"partition nvme", "/dev/nvme0n1p2", true},
		{"partition mmc", "/dev/mmcblk0p1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDevicePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDevicePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestLooksLikePartition(t *testing.T) {
	tests := []struct {
		dev  string
		want bool
	}{
		{"/dev/sda", false},
		{"/dev/sda1", true},
		{"/dev/sdb12", true},
		{"/dev/nvme0n1", false},
		{"/dev/nvme0n1p1", true},
		{"/dev/mmcblk0", false},
		{"/dev/mmcblk0p3", true},
		{"sdc2", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikePartition(tt.dev); got != tt.want {
			t.Errorf("LooksLikePartition(%q) = %v, want %v", tt.dev, got, tt.want)
		}
	}
}

func TestValidateVolumeLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{"default label", "MULTIBOOT", false},
		{"with digits", "BOOT2024", false},
		{"with underscore", "MY_USB", false},
		{"empty", "", true},
		{"too long", "MULTIBOOTUSB", true},
		{"lowercase", "multiboot", true},
		{"spaces", "MY USB", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVolumeLabel(tt.label)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVolumeLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
		})
	}
}

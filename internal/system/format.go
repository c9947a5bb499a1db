package system

import "fmt"

// formatterBinaries lists the interchangeable FAT formatter names in
// preference order.
var formatterBinaries = []string{"mkfs.vfat", "mkfs.fat"}

// Formatter creates FAT filesystems using whichever mkfs binary was found at
// startup.
type Formatter struct {
	bin    string
	runner CommandRunner
}

// NewFormatter creates a Formatter around a specific mkfs binary.
func NewFormatter(bin string, r CommandRunner) *Formatter {
	return &Formatter{bin: bin, runner: r}
}

// ResolveFormatter finds a FAT formatter on PATH.
func ResolveFormatter(r CommandRunner) (*Formatter, error) {
	bin, err := ResolveBinary(formatterBinaries...)
	if err != nil {
		return nil, err
	}
	return NewFormatter(bin, r), nil
}

// Binary returns the resolved mkfs binary name.
func (f *Formatter) Binary() string {
	return f.bin
}

// FormatFAT32 creates a FAT32 filesystem with the given label on partition.
func (f *Formatter) FormatFAT32(partition, label string) error {
	if out, err := f.runner.Run(f.bin, "-F", "32", "-n", label, partition); err != nil {
		return fmt.Errorf("%s %s failed: %w\nOutput: %s", f.bin, partition, err, out)
	}
	return nil
}

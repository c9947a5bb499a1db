package system

import (
	"errors"
	"testing"
)

func TestResolveFormatter(t *testing.T) {
	stubLookPath(t, "mkfs.fat")

	runner := NewMockCommandRunner()
	mkfs, err := ResolveFormatter(runner)
	if err != nil {
		t.Fatalf("ResolveFormatter failed: %v", err)
	}
	if mkfs.Binary() != "mkfs.fat" {
		t.Errorf("expected mkfs.fat, got %s", mkfs.Binary())
	}
}

func TestResolveFormatterMissing(t *testing.T) {
	stubLookPath(t)

	var missing *MissingProviderError
	if _, err := ResolveFormatter(NewMockCommandRunner()); !errors.As(err, &missing) {
		t.Fatalf("expected MissingProviderError, got %v", err)
	}
}

func TestFormatFAT32(t *testing.T) {
	runner := NewMockCommandRunner()
	mkfs := &Formatter{bin: "mkfs.vfat", runner: runner}

	if err := mkfs.FormatFAT32("/dev/sdb1", "MULTIBOOT"); err != nil {
		t.Fatalf("FormatFAT32 failed: %v", err)
	}

	calls := runner.CallsTo("mkfs.vfat")
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}

	want := []string{"-F", "32", "-n", "MULTIBOOT", "/dev/sdb1"}
	got := calls[0].Args
	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFormatFAT32Failure(t *testing.T) {
	runner := NewMockCommandRunner()
	runner.FailWith("mkfs.vfat", "no such device")
	mkfs := &Formatter{bin: "mkfs.vfat", runner: runner}

	if err := mkfs.FormatFAT32("/dev/sdb1", "MULTIBOOT"); err == nil {
		t.Fatal("expected error from failing mkfs")
	}
}

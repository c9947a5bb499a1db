package system

import (
	"os/user"
	"testing"
)

func TestInvokingUserFromSudoEnv(t *testing.T) {
	t.Setenv("SUDO_USER", "alice")

	runner := NewMockCommandRunner()
	if got := InvokingUser(runner); got != "alice" {
		t.Errorf("InvokingUser = %q, want alice", got)
	}
	if len(runner.Calls) != 0 {
		t.Error("logname should not be queried when SUDO_USER is set")
	}
}

func TestInvokingUserFallsBackToLogname(t *testing.T) {
	t.Setenv("SUDO_USER", "")

	runner := NewMockCommandRunner()
	runner.Responses["logname"] = MockResponse{Output: "bob\n"}

	if got := InvokingUser(runner); got != "bob" {
		t.Errorf("InvokingUser = %q, want bob", got)
	}
}

func TestInvokingUserRootIsNobody(t *testing.T) {
	t.Setenv("SUDO_USER", "root")

	runner := NewMockCommandRunner()
	runner.Responses["logname"] = MockResponse{Output: "root\n"}

	if got := InvokingUser(runner); got != "" {
		t.Errorf("InvokingUser = %q, want empty for root", got)
	}
}

func TestInvokingUserLognameFailure(t *testing.T) {
	t.Setenv("SUDO_USER", "")

	runner := NewMockCommandRunner()
	runner.FailWith("logname", "no login name")

	if got := InvokingUser(runner); got != "" {
		t.Errorf("InvokingUser = %q, want empty on logname failure", got)
	}
}

func TestRestoreOwnership(t *testing.T) {
	me, err := user.Current()
	if err != nil {
		t.Fatalf("user.Current failed: %v", err)
	}

	runner := NewMockCommandRunner()
	if err := RestoreOwnership(runner, "/mnt/target", me.Username); err != nil {
		t.Fatalf("RestoreOwnership failed: %v", err)
	}

	calls := runner.CallsTo("chown")
	if len(calls) != 1 {
		t.Fatalf("expected 1 chown call, got %d", len(calls))
	}
	want := []string{"-R", me.Uid + ":" + me.Gid, "/mnt/target"}
	got := calls[0].Args
	if len(got) != len(want) {
		t.Fatalf("chown args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chown arg[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRestoreOwnershipUnknownUser(t *testing.T) {
	runner := NewMockCommandRunner()

	if err := RestoreOwnership(runner, "/mnt/target", "no-such-user-zz9"); err == nil {
		t.Fatal("RestoreOwnership should fail for an unknown user")
	}
	if len(runner.Calls) != 0 {
		t.Error("must not chown when the user lookup fails")
	}
}

func TestRestoreOwnershipChownFailure(t *testing.T) {
	me, err := user.Current()
	if err != nil {
		t.Fatalf("user.Current failed: %v", err)
	}

	runner := NewMockCommandRunner()
	runner.FailWith("chown", "read-only file system")

	if err := RestoreOwnership(runner, "/mnt/target", me.Username); err == nil {
		t.Fatal("RestoreOwnership should surface chown failures")
	}
}

package system

import (
	"fmt"
	"os"
	"os/user"
	"strings"
)

// InvokingUser determines the non-privileged user who started the run.
// Under sudo that is SUDO_USER; otherwise the active login session is
// queried. Returns empty if the tool was invoked by root directly.
func InvokingUser(r CommandRunner) string {
	if name := os.Getenv("SUDO_USER"); name != "" && name != "root" {
		return name
	}

	out, err := r.Run("logname")
	if err != nil {
		return ""
	}
	name := strings.TrimSpace(out)
	if name == "root" {
		return ""
	}
	return name
}

// RestoreOwnership recursively hands ownership of path back to username.
func RestoreOwnership(r CommandRunner, path, username string) error {
	u, err := user.Lookup(username)
	if err != nil {
		return fmt.Errorf("failed to lookup user %s: %w", username, err)
	}

	owner := fmt.Sprintf("%s:%s", u.Uid, u.Gid)
	if out, err := r.Run("chown", "-R", owner, path); err != nil {
		return fmt.Errorf("failed to chown -R %s to %s: %w\nOutput: %s", path, owner, err, out)
	}
	return nil
}

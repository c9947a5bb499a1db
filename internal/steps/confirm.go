package steps

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDeclined is returned when the user does not confirm the destructive
// operation. The caller aborts silently with a dedicated exit status.
var ErrDeclined = errors.New("user declined confirmation")

// IsAffirmative reports whether answer is an explicit yes. Only "y" and
// "yes" count, case-insensitively; anything else, including an empty
// answer, is a decline.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// ConfirmWipe runs the two-stage confirmation gate using ask to obtain each
// answer. Strictly linear: a non-affirmative answer at either stage declines
// with no re-prompting.
func ConfirmWipe(device string, ask func(prompt string) (string, error)) error {
	prompts := []string{
		fmt.Sprintf("ALL DATA ON %s WILL BE DESTROYED. Continue? [y/N]", device),
		fmt.Sprintf("Are you sure you want to wipe %s? [y/N]", device),
	}

	for _, prompt := range prompts {
		answer, err := ask(prompt)
		if err != nil {
			return ErrDeclined
		}
		if !IsAffirmative(answer) {
			return ErrDeclined
		}
	}
	return nil
}

// Confirm shows the destructive-action warning and runs the gate unless the
// run was started with --assume-yes.
func (p *Pipeline) Confirm() error {
	if p.AssumeYes {
		p.UI.Warningf("Skipping confirmation (--assume-yes): %s will be wiped", p.Device)
		return nil
	}

	p.UI.Header(fmt.Sprintf("About to wipe %s", p.Device))
	p.UI.Warning("This will destroy the partition table and all data on the device.")

	return ConfirmWipe(p.Device, p.UI.PromptInput)
}

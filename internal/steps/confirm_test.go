package steps

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"yes", true},
		{"YES", true},
		{"Yes", true},
		{" yes ", true},
		{"", false},
		{"n", false},
		{"no", false},
		{"yep", false},
		{"ye", false},
		{"true", false},
		{"1", false},
	}

	for _, tt := range tests {
		if got := IsAffirmative(tt.answer); got != tt.want {
			t.Errorf("IsAffirmative(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

// scriptedAsker returns canned answers in order and records how many prompts
// were shown.
func scriptedAsker(answers ...string) (func(string) (string, error), *int) {
	asked := 0
	count := &asked
	return func(prompt string) (string, error) {
		if asked >= len(answers) {
			return "", fmt.Errorf("unexpected prompt: %s", prompt)
		}
		answer := answers[asked]
		asked++
		return answer, nil
	}, count
}

func TestConfirmWipeBothAffirmative(t *testing.T) {
	ask, asked := scriptedAsker("y", "yes")

	if err := ConfirmWipe("/dev/sdb", ask); err != nil {
		t.Fatalf("ConfirmWipe failed: %v", err)
	}
	if *asked != 2 {
		t.Errorf("expected exactly 2 prompts, got %d", *asked)
	}
}

func TestConfirmWipeFirstDeclined(t *testing.T) {
	ask, asked := scriptedAsker("n")

	if err := ConfirmWipe("/dev/sdb", ask); !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
	if *asked != 1 {
		t.Errorf("second prompt should not be shown after a decline, got %d prompts", *asked)
	}
}

func TestConfirmWipeSecondDeclined(t *testing.T) {
	ask, _ := scriptedAsker("yes", "")

	if err := ConfirmWipe("/dev/sdb", ask); !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
}

func TestConfirmWipePromptError(t *testing.T) {
	ask := func(prompt string) (string, error) {
		return "", fmt.Errorf("stdin closed")
	}

	if err := ConfirmWipe("/dev/sdb", ask); !errors.Is(err, ErrDeclined) {
		t.Fatalf("prompt failure should decline, got %v", err)
	}
}

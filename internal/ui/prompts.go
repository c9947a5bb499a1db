package ui

import (
	"github.com/AlecAivazis/survey/v2"
)

// PromptInput prompts the user for free-text input and returns the raw
// answer. The destructive-confirmation gate parses the token itself, so
// this deliberately does not interpret the answer.
func (u *UI) PromptInput(prompt string) (string, error) {
	var result string
	p := &survey.Input{
		Message: prompt,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptYesNo prompts the user for a yes/no answer with a default.
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptPassword prompts for a masked input.
func PromptPassword(message string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		EchoMode(huh.EchoModePassword).
		Value(&inputVal)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return inputVal, err
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptDate prompts for a date in YYYY-MM-DD format
func PromptDate(message string, defaultDate string, validator func(string) error) (string, error) {
	var date string

	input := huh.NewInput().
		Title(message).
		Placeholder(defaultDate).
		Value(&date)

	if validator != nil {
		input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" && defaultDate != "" {
				return nil
			}
			return validator(s)
		})
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if date == "" {
		return defaultDate, nil
	}
	return date, nil
}

// PromptOptional prompts for a text input that may stay empty.
func PromptOptional(message string) (string, error) {
	var inputVal string

	err := huh.NewInput().
		Title(fmt.Sprintf("%s (optional):", message)).
		Value(&inputVal).
		Run()

	return strings.TrimSpace(inputVal), err
}

package errhandler

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsCancellation reports whether err is the user backing out of a prompt
// (Esc or Ctrl-C), which is not a failure.
func IsCancellation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, terminal.InterruptErr) ||
		strings.Contains(err.Error(), "interrupt")
}

func HandleError(err error) {
	if IsCancellation(err) {
		pterm.Warning.Println("Operation cancelled")
		return
	}

	pterm.Error.Println(err)
}

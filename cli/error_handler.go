package cli

import (
	"fmt"
	"os"

	"github.com/mattsolo1/grove-pick/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type.
// A nil error passes through untouched.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeGitNotInstalled:
		fmt.Fprintf(os.Stderr, "❌ git is not installed or not on PATH.\n")
		return err

	case errors.ErrCodeGitNotRepo:
		fmt.Fprintf(os.Stderr, "❌ Not inside a git repository.\n")
		return err

	case errors.ErrCodeGitNoCommits:
		fmt.Fprintf(os.Stderr, "❌ This repository has no commits yet.\n")
		fmt.Fprintf(os.Stderr, "Make an initial commit, or use the gitstatus source.\n")
		return err

	case errors.ErrCodeSourceUnknown:
		if pickErr, ok := err.(*errors.PickError); ok {
			fmt.Fprintf(os.Stderr, "❌ Unknown source '%s'\n", pickErr.Details["source"])
		}
		fmt.Fprintf(os.Stderr, "Available sources: gitlog, gitstatus, gitchanged\n")
		return err

	case errors.ErrCodeActionUnknown:
		if pickErr, ok := err.(*errors.PickError); ok {
			fmt.Fprintf(os.Stderr, "❌ Unknown action '%s'\n", pickErr.Details["action"])
		}
		return err

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration file not found.\n")
		return err

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(os.Stderr, "❌ Invalid configuration: %v\n", err)
		return err

	case errors.ErrCodeCandidateGone:
		fmt.Fprintf(os.Stderr, "❌ The selected entry no longer exists. Refresh and retry.\n")
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if pickErr, ok := err.(*errors.PickError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", pickErr.ToJSON())
			}
		}
		return err
	}
}

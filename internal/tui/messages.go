package tui

import "github.com/cs1501-tools-of-the-trade/social-platform-demo/models"

// submittedMsg carries the outcome of one submission back to the form.
type submittedMsg struct {
	input models.SubmissionInput
	err   error
}

type copiedMsg struct {
	err error
}

// Package commands implements the executable intents produced by the parser.
// Each command is a small struct carrying validated operands; Execute applies
// it against the model atomically, so a failed command never leaves a partial
// mutation behind.
package commands

import "github.com/c360studio/carelog/model"

// Command is a validated, executable user intent.
type Command interface {
	// Execute applies the command against the model. On failure the model is
	// unchanged and the error carries a fixed, user-facing message.
	Execute(m *model.Manager) (Result, error)
}

// Result is what a successful command hands to the presentation layer.
type Result struct {
	// Message is the user-facing feedback text.
	Message string
	// ShowHelp signals the presentation layer to surface help.
	ShowHelp bool
	// Exit signals the application to terminate.
	Exit bool
}

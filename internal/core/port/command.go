package port

import "filekit/internal/core/domain"

type CommandRegistry interface {
	// Register adds a new command handler to the command registry.
	Register(handler domain.CommandResponder)
	// Get retrieves a registered command handler based on its name or returns an error if not found.
	Get(command string) (domain.CommandResponder, error)
	// ListCommands returns the names of all command handlers currently registered.
	ListCommands() []string
}

package domain

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

type CommandResponder interface {
	Respond(ctx context.Context, invocation *Invocation) error
	GetCommand() string
	Describe() string
}

type CommandRegistry struct {
	commands map[string]CommandResponder
}

func (c *CommandRegistry) Register(handler CommandResponder) {
	if c.commands == nil {
		c.commands = make(map[string]CommandResponder)
	}

	log.Debug().Str("handler", handler.GetCommand()).Msg("adding command handler to registry")
	c.commands[handler.GetCommand()] = handler
}

func (c *CommandRegistry) Get(command string) (CommandResponder, error) {
	log.Debug().Str("command", command).Msg("fetching command handler from registry")

	if c.commands == nil {
		return nil, ErrRegistryEmpty
	}

	handler, ok := c.commands[command]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, command)
	}

	return handler, nil
}

// ListCommands returns the registered command names in lexical order.
func (c *CommandRegistry) ListCommands() []string {
	keys := make([]string, 0, len(c.commands))
	for k := range c.commands {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

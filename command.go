package bento

import (
	"context"

	"github.com/bentonow/bento-go/internal/apierrors"
)

// CommandType is a subscriber mutation.
type CommandType string

const (
	CommandAddTag         CommandType = "add_tag"
	CommandAddTagViaEvent CommandType = "add_tag_via_event"
	CommandRemoveTag      CommandType = "remove_tag"
	CommandAddField       CommandType = "add_field"
	CommandRemoveField    CommandType = "remove_field"
	CommandSubscribe      CommandType = "subscribe"
	CommandUnsubscribe    CommandType = "unsubscribe"
	CommandChangeEmail    CommandType = "change_email"
)

// Valid reports whether t is a known command.
func (t CommandType) Valid() bool {
	switch t {
	case CommandAddTag, CommandAddTagViaEvent, CommandRemoveTag, CommandAddField,
		CommandRemoveField, CommandSubscribe, CommandUnsubscribe, CommandChangeEmail:
		return true
	}
	return false
}

// Command applies a CommandType to the subscriber with Email. Query is the
// command argument: a tag name, a field, or the new email address.
type Command struct {
	Command CommandType `json:"command"`
	Email   string      `json:"email"`
	Query   string      `json:"query"`
}

// ExecuteCommands runs subscriber commands.
func (c *Client) ExecuteCommands(ctx context.Context, commands []Command) (*BatchResult, error) {
	if len(commands) == 0 {
		return nil, apierrors.Invalid(ErrInvalidRequest, "no commands provided")
	}
	for _, cmd := range commands {
		if err := validateEmail(cmd.Email); err != nil {
			return nil, err
		}
		if !cmd.Command.Valid() {
			return nil, apierrors.Invalid(ErrInvalidCommand, "%q", cmd.Command)
		}
		if cmd.Query == "" {
			return nil, apierrors.Invalid(ErrInvalidRequest, "command query is required")
		}
	}

	// The wrapper key is singular even though it carries a list.
	return c.postBatch(ctx, "command execution", "/fetch/commands", map[string]any{"command": commands})
}

package game

import "github.com/vovakirdan/rsa-snake/internal/core"

// Command is an out-of-band player request.
type Command int

const (
	CommandNone Command = iota
	CommandPause
	CommandRestart
	CommandMain
	CommandNewPlayer
)

func (c Command) String() string {
	switch c {
	case CommandPause:
		return "pause"
	case CommandRestart:
		return "restart"
	case CommandMain:
		return "main"
	case CommandNewPlayer:
		return "newplayer"
	default:
		return "none"
	}
}

// commandActions lists the actions that raise a command, in priority order.
var commandActions = []struct {
	action  core.Action
	command Command
}{
	{core.ActionNewPlayer, CommandNewPlayer},
	{core.ActionMain, CommandMain},
	{core.ActionRestart, CommandRestart},
	{core.ActionPause, CommandPause},
}

// CommandRouter is a single-slot command holder. At most one command is in
// flight; it stays pending until taken.
type CommandRouter struct {
	slot Command
}

// Raise stores c if the slot is empty.
func (r *CommandRouter) Raise(c Command) bool {
	if c == CommandNone || r.slot != CommandNone {
		return false
	}
	r.slot = c
	return true
}

// Pending returns the stored command without clearing it.
func (r *CommandRouter) Pending() Command {
	return r.slot
}

// Take returns the stored command and clears the slot.
func (r *CommandRouter) Take() Command {
	c := r.slot
	r.slot = CommandNone
	return c
}

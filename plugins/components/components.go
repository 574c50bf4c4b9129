package components

import (
	"context"

	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
)

// Executable is what the registry maps command names to.
type Executable struct {
	Summary string
	Options []Flag
	Command CommandFunc
}

// CommandFunc runs a command with its resolved configuration (nil when none was found).
type CommandFunc func(ctx context.Context, configuration any, c *Context, logger log.Logger) error

// DefaultOption returns the positional option of the executable, if any.
func (e *Executable) DefaultOption() (StringFlag, bool) {
	for _, option := range e.Options {
		if stringFlag, ok := option.(StringFlag); ok && stringFlag.DefaultOption {
			return stringFlag, true
		}
	}
	return StringFlag{}, false
}

package commands

import (
	"context"
	"time"

	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
)

type Command interface {
	// Runs the command
	Run(ctx context.Context) error
	// The command name, as typed by the user.
	CommandName() string
}

func Exec(ctx context.Context, command Command, logger log.Logger) error {
	start := time.Now()
	err := command.Run(ctx)
	logger.Debug("Command " + command.CommandName() + " finished after " + time.Since(start).Round(time.Millisecond).String())
	return err
}

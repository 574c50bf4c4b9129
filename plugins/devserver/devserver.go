package devserver

import (
	"context"

	"github.com/ringtoolkit/ring-toolkit-core/plugins/common"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
)

const (
	ToolExecutable = "wds"
	DisplayName    = "@web/dev-server"
)

func NewExecutable(runner common.Runner) *components.Executable {
	return &components.Executable{
		Summary: "launch @web/dev-server, accept any additional wds parameter",
		Command: func(ctx context.Context, configuration any, c *components.Context, logger log.Logger) error {
			return Start(ctx, runner, configuration, c.Argv, logger)
		},
	}
}

// Start runs the dev server with the given configuration.
func Start(ctx context.Context, runner common.Runner, configuration any, argv []string, logger log.Logger) error {
	return common.RunWebTool(ctx, runner, ToolExecutable, DisplayName, configuration, argv, logger)
}

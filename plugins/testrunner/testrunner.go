package testrunner

import (
	"context"

	"github.com/ringtoolkit/ring-toolkit-core/plugins/common"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
)

const (
	ToolExecutable = "wtr"
	DisplayName    = "@web/test-runner"
)

func NewExecutable(runner common.Runner) *components.Executable {
	return &components.Executable{
		Summary: "launch @web/test-runner, accept any additional wtr parameter",
		Command: func(ctx context.Context, configuration any, c *components.Context, logger log.Logger) error {
			return common.RunWebTool(ctx, runner, ToolExecutable, DisplayName, configuration, c.Argv, logger)
		},
	}
}

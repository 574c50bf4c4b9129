package commands

import (
	"github.com/ringtoolkit/ring-toolkit-core/common/registry"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/common"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/depcheck"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/devserver"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/rollup"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/serve"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/testrunner"
)

const (
	Dev      = "dev"
	Test     = "test"
	Serve    = "serve"
	Build    = "build"
	Depcheck = "depcheck"
)

// DefaultCommands lists the built-in commands, in display order.
func DefaultCommands(runner common.Runner) []registry.Entry {
	return []registry.Entry{
		{Command: Dev, Executable: devserver.NewExecutable(runner), Aliases: []string{"start", "wds", "web-dev-server", "@web/dev-server"}},
		{Command: Test, Executable: testrunner.NewExecutable(runner), Aliases: []string{"wtr", "web-test-runner", "@web/test-runner"}},
		{Command: Serve, Executable: serve.NewExecutable(runner), Aliases: []string{"static"}},
		{Command: Build, Executable: rollup.NewExecutable(runner), Aliases: []string{"rollup", "bundle"}},
		{Command: Depcheck, Executable: depcheck.NewExecutable(runner)},
	}
}

func RegisterDefaultCommands(commandRegistry *registry.CommandRegistry, runner common.Runner) {
	for _, entry := range DefaultCommands(runner) {
		commandRegistry.RegisterCommand(entry.Executable, entry.Command, entry.Aliases...)
	}
}

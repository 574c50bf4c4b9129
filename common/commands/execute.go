package commands

import (
	"context"
	"encoding/json"
	"fmt"

	clientutils "github.com/jfrog/jfrog-client-go/utils"
	"github.com/ringtoolkit/ring-toolkit-core/common/configuration"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
)

// ExecuteCommand resolves the command options and configuration, then runs the executable.
// argv is what the shared options left, the executable receives it untouched.
func ExecuteCommand(ctx context.Context, registry configuration.AliasResolver, command string, executable *components.Executable,
	conf configuration.Configuration, argv []string, logger log.Logger) error {
	options := configuration.ReadCommandCliArgs(executable, argv)
	commandConfiguration, err := configuration.GetCommandConfiguration(ctx, registry, command, conf, options)
	if err != nil {
		return err
	}

	logger.Log("Executing command " + coreutils.PrintBoldTitle(command))
	logger.Debug(coreutils.PrintTitle("Configuration found for command " + command + ":"))
	logger.Debug(coreutils.PrintTitle(describe(commandConfiguration, options, argv)))

	return Exec(ctx, &executableCommand{
		name:          command,
		executable:    executable,
		configuration: commandConfiguration,
		context:       &components.Context{Options: options, Argv: argv},
		logger:        logger,
	}, logger)
}

type executableCommand struct {
	name          string
	executable    *components.Executable
	configuration any
	context       *components.Context
	logger        log.Logger
}

func (ec *executableCommand) Run(ctx context.Context) error {
	return ec.executable.Command(ctx, ec.configuration, ec.context, ec.logger)
}

func (ec *executableCommand) CommandName() string {
	return ec.name
}

func describe(commandConfiguration any, options components.Options, argv []string) string {
	content := map[string]any{
		"configuration": commandConfiguration,
		"options":       options,
		"arguments":     argv,
	}
	body, err := json.Marshal(content)
	if err != nil {
		// Configurations may hold values JSON cannot represent, such as plugin functions.
		return fmt.Sprintf("%+v", content)
	}
	return clientutils.IndentJson(body)
}

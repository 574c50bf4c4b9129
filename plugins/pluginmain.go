package plugins

import (
	"context"
	"os"
	"path/filepath"

	ringtoolkitcore "github.com/ringtoolkit/ring-toolkit-core"
	"github.com/ringtoolkit/ring-toolkit-core/common/commands"
	"github.com/ringtoolkit/ring-toolkit-core/common/configuration"
	"github.com/ringtoolkit/ring-toolkit-core/common/registry"
	"github.com/ringtoolkit/ring-toolkit-core/docs/common"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
	"github.com/urfave/cli"
)

// ToolkitMain runs the toolkit with the process arguments and exits with the resulting exit code.
func ToolkitMain(opts ...RunOption) {
	// Help messages show the binary as it was invoked.
	coreutils.SetCliExecutableName(filepath.Base(os.Args[0]))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	coreutils.ExitOnErr(RunToolkit(ctx, os.Args[1:], opts...))
}

// RunToolkit parses the shared options, registers the commands, loads the configuration file and
// runs the requested command. Without a command the global help is printed.
func RunToolkit(ctx context.Context, args []string, opts ...RunOption) error {
	cliArgs := configuration.ReadCliArgs(args)
	runOptions := newRunOptions(opts)

	logger := runOptions.logger
	if logger == nil {
		logger = log.NewLogger(cliArgs.DebugLogging)
	}
	logger.Debug("Running " + ringtoolkitcore.GetUserAgent())

	commandRegistry := registry.New(logger)
	if !cliArgs.Empty {
		commands.RegisterDefaultCommands(commandRegistry, runOptions.runner)
	}
	// Registered after the defaults, so they can override them.
	for _, register := range runOptions.commands {
		register(commandRegistry)
	}

	fileConfiguration := configuration.ReadFileConfig(cliArgs.Config, runOptions.baseDir, logger)
	toolkitConfiguration := fileConfiguration.Merge(runOptions.configuration)

	if cliArgs.Command == "" {
		return common.PrintGlobalHelp(runOptions.out, commandRows(commandRegistry), sharedFlags())
	}

	executable, ok := commandRegistry.GetExecutableForCommand(cliArgs.Command)
	if !ok {
		logger.Error("No executable found for command " + coreutils.PrintBold(coreutils.PrintRed(cliArgs.Command)) + ". Exiting.")
		return coreutils.CliError{ExitCode: coreutils.ExitCodeError}
	}

	if cliArgs.Help {
		realCommand := commandRegistry.GetCommandFromAlias(cliArgs.Command)
		common.PrintCommandHelp(runOptions.out, components.ConvertCommand(realCommand, commandRegistry.GetAliasesForCommand(realCommand), executable), sharedFlags())
		return nil
	}

	return commands.ExecuteCommand(ctx, commandRegistry, cliArgs.Command, executable, toolkitConfiguration, cliArgs.Argv, logger)
}

func sharedFlags() []cli.Flag {
	return components.ConvertFlags(configuration.SharedOptions)
}

package rollup

import (
	"context"

	"github.com/ringtoolkit/ring-toolkit-core/plugins/common"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
)

const (
	ToolExecutable = "rollup"
	pluginsKey     = "plugins"
	outputKey      = "output"
)

func NewExecutable(runner common.Runner) *components.Executable {
	return &components.Executable{
		Summary: "launch rollup, accept rollup CLI parameters if config is not provided",
		Command: func(ctx context.Context, configuration any, c *components.Context, logger log.Logger) error {
			return Build(ctx, runner, configuration, c.Argv, logger)
		},
	}
}

// Build runs rollup once per configuration. Without configuration, argv is handed to the rollup CLI.
func Build(ctx context.Context, runner common.Runner, configuration any, argv []string, logger log.Logger) error {
	if coreutils.IsFalsy(configuration) {
		logger.Log("No build config found, falling back to Rollup CLI")
		return coreutils.ConvertExitCodeError(runner.Run(common.NewToolCmd(ctx, ToolExecutable, argv...)))
	}

	logger.Log("Building using Rollup...")
	configs, err := common.ToConfigMaps(configuration)
	if err == nil {
		for _, config := range configs {
			if err = runner.Run(common.NewToolCmd(ctx, ToolExecutable, buildArgs(config, logger)...)); err != nil {
				break
			}
		}
	}
	if err != nil {
		logger.Error(coreutils.PrintRed("An error occurred during build"))
		logger.Error(err.Error())
		return coreutils.CliError{ExitCode: coreutils.ExitCodeError}
	}

	logger.Log(coreutils.PrintTitle("Build successful!"))
	return nil
}

// The output options are top level flags of the rollup CLI, and every plugin is a --plugin flag.
func buildArgs(config map[string]any, logger log.Logger) []string {
	flags := make(map[string]any, len(config))
	for key, value := range config {
		switch key {
		case pluginsKey:
		case outputKey:
			if output, ok := value.(map[string]any); ok {
				for name, outputValue := range output {
					flags[name] = outputValue
				}
				continue
			}
			flags[key] = value
		default:
			flags[key] = value
		}
	}
	args := common.ConfigToArgs(flags)
	rawPlugins, declared := config[pluginsKey]
	if !declared || coreutils.IsFalsy(rawPlugins) {
		return args
	}
	plugins, ok := common.ToList(rawPlugins)
	if !ok {
		// A single plugin.
		plugins = []any{rawPlugins}
	}
	for _, plugin := range plugins {
		if coreutils.IsFalsy(plugin) {
			continue
		}
		name, ok := common.PluginName(plugin)
		if !ok {
			logger.Warn("Skipping a rollup plugin with no command line name")
			continue
		}
		args = append(args, "--plugin", name)
	}
	return args
}

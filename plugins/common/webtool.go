package common

import (
	"context"

	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
)

const pluginsKey = "plugins"

// RunWebTool starts one of the @web tools. Without configuration the tool reads its own configuration file,
// otherwise the configuration is passed as flags, followed by argv.
func RunWebTool(ctx context.Context, runner Runner, executable, displayName string, conf any, argv []string, logger log.Logger) error {
	logger.Log("Starting " + displayName)
	args, err := webToolArgs(conf, displayName, logger)
	if err != nil {
		return err
	}
	args = append(args, argv...)
	return coreutils.ConvertExitCodeError(runner.Run(NewToolCmd(ctx, executable, args...)))
}

func webToolArgs(conf any, displayName string, logger log.Logger) ([]string, error) {
	if coreutils.IsFalsy(conf) {
		return []string{}, nil
	}
	configs, err := ToConfigMaps(conf)
	if err != nil || len(configs) == 0 {
		return []string{}, err
	}
	if len(configs) > 1 {
		logger.Warn("Only the first configuration is used by " + displayName)
	}
	config := make(map[string]any, len(configs[0]))
	for key, value := range configs[0] {
		if key == pluginsKey {
			logger.Warn("Plugins cannot be passed to the " + displayName + " command line, declare them in its configuration file")
			continue
		}
		config[key] = value
	}
	return ConfigToArgs(config), nil
}

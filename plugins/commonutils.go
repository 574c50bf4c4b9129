package plugins

import (
	"io"
	"os"

	"github.com/ringtoolkit/ring-toolkit-core/common/configuration"
	"github.com/ringtoolkit/ring-toolkit-core/common/registry"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/common"
	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
)

type runOptions struct {
	configuration configuration.Configuration
	commands      []func(*registry.CommandRegistry)
	out           io.Writer
	logger        log.Logger
	runner        common.Runner
	baseDir       string
}

type RunOption func(*runOptions)

func newRunOptions(opts []RunOption) *runOptions {
	options := &runOptions{
		out:    os.Stdout,
		runner: common.NewProcessRunner(),
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithConfiguration adds programmatic configuration entries. They win over the configuration file.
func WithConfiguration(conf configuration.Configuration) RunOption {
	return func(o *runOptions) {
		o.configuration = o.configuration.Merge(conf)
	}
}

// WithCommands registers custom commands, after the default ones.
func WithCommands(register func(*registry.CommandRegistry)) RunOption {
	return func(o *runOptions) {
		o.commands = append(o.commands, register)
	}
}

// WithOutput sets where help messages are printed. Defaults to stdout.
func WithOutput(out io.Writer) RunOption {
	return func(o *runOptions) {
		o.out = out
	}
}

func WithLogger(logger log.Logger) RunOption {
	return func(o *runOptions) {
		o.logger = logger
	}
}

// WithRunner replaces the process runner used by the default commands.
func WithRunner(runner common.Runner) RunOption {
	return func(o *runOptions) {
		o.runner = runner
	}
}

// WithBaseDir sets the directory configuration files are searched in. Defaults to the working directory.
func WithBaseDir(baseDir string) RunOption {
	return func(o *runOptions) {
		o.baseDir = baseDir
	}
}

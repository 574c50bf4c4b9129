package configuration

import "github.com/ringtoolkit/ring-toolkit-core/plugins/components"

const (
	Command = "command"
	Config  = "config"
	Empty   = "empty"
	Help    = "help"
	Debug   = "debug"
)

// SharedOptions are understood by the toolkit itself, before any command runs.
var SharedOptions = []components.Flag{
	components.StringFlag{
		Name:          Command,
		DefaultOption: true,
		Hidden:        true,
	},
	components.StringFlag{
		Name:        Config,
		Alias:       "c",
		Description: "A custom path to a Ring Toolkit config file",
	},
	components.BoolFlag{
		Name:        Empty,
		Alias:       "e",
		Description: "Disable default commands. Defaults to false",
	},
	components.BoolFlag{
		Name:        Help,
		Alias:       "h",
		Description: "Displays this message, or a command help message if a command is provided",
	},
	components.BoolFlag{
		Name:        Debug,
		Description: "Enable debug logs. Defaults to false",
	},
}

package configuration

import (
	"strconv"
	"strings"

	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
)

// CliArgs holds the shared options of a toolkit invocation.
type CliArgs struct {
	Command      string
	Config       string
	Empty        bool
	Help         bool
	DebugLogging bool
	// Everything the shared options did not claim, handed to the command.
	Argv []string
}

// ReadCliArgs extracts the shared options from argv. Unknown arguments are kept, in order, in Argv.
func ReadCliArgs(argv []string) CliArgs {
	values, unknown := parseArgs(SharedOptions, argv)
	options := toOptions(SharedOptions, values)
	return CliArgs{
		Command:      options.GetString(Command),
		Config:       options.GetString(Config),
		Empty:        options.GetBool(Empty),
		Help:         options.GetBool(Help),
		DebugLogging: options.GetBool(Debug),
		Argv:         unknown,
	}
}

// ReadCommandCliArgs parses argv against the executable's options.
// Each option is stored under its literal and camel-cased name, unknown arguments are dropped.
func ReadCommandCliArgs(executable *components.Executable, argv []string) components.Options {
	options, _ := SplitCommandCliArgs(executable, argv)
	return options
}

// SplitCommandCliArgs is ReadCommandCliArgs that also returns the arguments none of the executable's options claimed.
func SplitCommandCliArgs(executable *components.Executable, argv []string) (components.Options, []string) {
	values, unknown := parseArgs(executable.Options, argv)
	return toOptions(executable.Options, values), unknown
}

func toOptions(flags []components.Flag, values map[string]any) components.Options {
	options := components.Options{}
	set := func(name string, value any) {
		options[name] = value
		options[coreutils.ToCamelCase(name)] = value
	}
	for _, flag := range flags {
		value, given := values[flag.GetName()]
		switch f := flag.(type) {
		case components.BoolFlag:
			if !given {
				value = f.DefaultValue
			}
			set(f.Name, value)
		case components.StringFlag:
			if !given {
				if f.DefaultValue == "" {
					continue
				}
				value = f.DefaultValue
			}
			set(f.Name, value)
		}
	}
	return options
}

// parseArgs is a partial parser: arguments matching no definition are returned instead of failing.
// An unknown option keeps its value with it, and everything after "--" is left untouched.
func parseArgs(flags []components.Flag, argv []string) (values map[string]any, unknown []string) {
	values = make(map[string]any)
	unknown = []string{}
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			unknown = append(unknown, argv[i:]...)
			break
		}
		if !isOption(arg) {
			if defaultOption := findDefaultOption(flags); defaultOption != nil {
				if _, ok := values[defaultOption.Name]; !ok {
					values[defaultOption.Name] = arg
					continue
				}
			}
			unknown = append(unknown, arg)
			continue
		}

		name, inlineValue, hasInlineValue := splitOption(arg)
		flag := findFlag(flags, name, strings.HasPrefix(arg, "--"))
		if flag == nil {
			unknown = append(unknown, arg)
			if !hasInlineValue && i+1 < len(argv) && !isOption(argv[i+1]) && argv[i+1] != "--" {
				i++
				unknown = append(unknown, argv[i])
			}
			continue
		}

		switch f := flag.(type) {
		case components.BoolFlag:
			if !hasInlineValue {
				values[f.Name] = true
				continue
			}
			parsed, err := strconv.ParseBool(inlineValue)
			if err != nil {
				unknown = append(unknown, arg)
				continue
			}
			values[f.Name] = parsed
		case components.StringFlag:
			switch {
			case hasInlineValue:
				values[f.Name] = inlineValue
			case i+1 < len(argv) && !isOption(argv[i+1]) && argv[i+1] != "--":
				i++
				values[f.Name] = argv[i]
			default:
				values[f.Name] = f.NoOptDefault
			}
		}
	}
	return values, unknown
}

// Negative numbers are values, not options.
func isOption(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err != nil
}

func splitOption(arg string) (name, value string, hasValue bool) {
	name = strings.TrimLeft(arg, "-")
	if index := strings.Index(name, "="); index >= 0 {
		return name[:index], name[index+1:], true
	}
	return name, "", false
}

func findFlag(flags []components.Flag, name string, long bool) components.Flag {
	for _, flag := range flags {
		if long && flag.GetName() == name {
			return flag
		}
		if !long && flag.GetAlias() != "" && flag.GetAlias() == name {
			return flag
		}
	}
	return nil
}

func findDefaultOption(flags []components.Flag) *components.StringFlag {
	for _, flag := range flags {
		if stringFlag, ok := flag.(components.StringFlag); ok && stringFlag.DefaultOption {
			return &stringFlag
		}
	}
	return nil
}

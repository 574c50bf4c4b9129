package configuration

import (
	"testing"

	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
	"github.com/stretchr/testify/assert"
)

func TestReadCliArgsDefaults(t *testing.T) {
	args := ReadCliArgs([]string{})
	assert.Empty(t, args.Command)
	assert.Empty(t, args.Config)
	assert.False(t, args.Empty)
	assert.False(t, args.Help)
	assert.False(t, args.DebugLogging)
	assert.Equal(t, []string{}, args.Argv)
}

func TestReadCliArgsAllOptions(t *testing.T) {
	args := ReadCliArgs([]string{"test-cmd-name", "--config", "test-config-file", "--empty", "--help", "--debug"})
	assert.Equal(t, "test-cmd-name", args.Command)
	assert.Equal(t, "test-config-file", args.Config)
	assert.True(t, args.Empty)
	assert.True(t, args.Help)
	assert.True(t, args.DebugLogging)
	assert.Empty(t, args.Argv)
}

func TestReadCliArgsAliases(t *testing.T) {
	args := ReadCliArgs([]string{"-c", "custom.yaml", "-e", "-h", "build"})
	assert.Equal(t, "build", args.Command)
	assert.Equal(t, "custom.yaml", args.Config)
	assert.True(t, args.Empty)
	assert.True(t, args.Help)
}

func TestReadCliArgsRemainingArgs(t *testing.T) {
	args := ReadCliArgs([]string{"test-cmd-name", "--help", "--some", "value", "--flag", "--empty"})
	assert.Equal(t, "test-cmd-name", args.Command)
	assert.Empty(t, args.Config)
	assert.True(t, args.Empty)
	assert.True(t, args.Help)
	assert.False(t, args.DebugLogging)
	assert.Equal(t, []string{"--some", "value", "--flag"}, args.Argv)
}

func TestReadCliArgsPositionalsAndTerminator(t *testing.T) {
	args := ReadCliArgs([]string{"serve", "./dist", "--config=rt.json", "--", "--debug", "x"})
	assert.Equal(t, "serve", args.Command)
	assert.Equal(t, "rt.json", args.Config)
	assert.False(t, args.DebugLogging)
	assert.Equal(t, []string{"./dist", "--", "--debug", "x"}, args.Argv)
}

var testExecutable = &components.Executable{
	Options: []components.Flag{
		components.BoolFlag{Name: "flag"},
		components.StringFlag{Name: "value"},
		components.BoolFlag{Name: "complex-flag"},
		components.StringFlag{Name: "complex-value"},
	},
}

func TestReadCommandCliArgs(t *testing.T) {
	options := ReadCommandCliArgs(testExecutable, []string{
		"--flag", "--value", "hello world", "--complex-flag", "--complex-value", "goodbye",
	})

	assert.Equal(t, true, options["flag"])
	assert.Equal(t, "hello world", options["value"])
	assert.Equal(t, true, options["complex-flag"])
	assert.Equal(t, "goodbye", options["complex-value"])
	assert.Equal(t, true, options["complexFlag"])
	assert.Equal(t, "goodbye", options["complexValue"])
}

func TestReadCommandCliArgsIgnoresUnknown(t *testing.T) {
	options := ReadCommandCliArgs(testExecutable, []string{
		"--flag", "--value", "hello world", "--complex-flag", "--complex-value", "goodbye",
		"--unknown-flag", "--unknown-value", "value",
	})

	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	assert.ElementsMatch(t, []string{"flag", "value", "complexFlag", "complex-flag", "complexValue", "complex-value"}, keys)
}

func TestReadCommandCliArgsDefaults(t *testing.T) {
	executable := &components.Executable{
		Options: []components.Flag{
			components.StringFlag{Name: "root-dir", DefaultOption: true},
			components.StringFlag{Name: "spa", Alias: "S", NoOptDefault: "index.html"},
			components.StringFlag{Name: "cors", Alias: "C", NoOptDefault: "*"},
			components.StringFlag{Name: "mode", DefaultValue: "production"},
			components.BoolFlag{Name: "watch"},
		},
	}
	options := ReadCommandCliArgs(executable, []string{"./public", "-S", "--cors", "--unknown"})

	assert.Equal(t, "./public", options.GetString("rootDir"))
	assert.Equal(t, "index.html", options.GetString("spa"))
	assert.Equal(t, "*", options.GetString("cors"))
	assert.Equal(t, "production", options.GetString("mode"))
	assert.Equal(t, false, options["watch"])
	assert.False(t, options.Has("unknown"))
}

func TestReadCommandCliArgsStringWithoutDefaultIsAbsent(t *testing.T) {
	options := ReadCommandCliArgs(testExecutable, []string{})
	assert.False(t, options.Has("value"))
	assert.False(t, options.Has("complexValue"))
	assert.Equal(t, false, options["flag"])
}

func TestParseArgsBoolInlineValue(t *testing.T) {
	values, unknown := parseArgs(testExecutable.Options, []string{"--flag=false", "--complex-flag=maybe", "-1"})
	assert.Equal(t, false, values["flag"])
	assert.NotContains(t, values, "complex-flag")
	assert.Equal(t, []string{"--complex-flag=maybe", "-1"}, unknown)
}

func TestSplitCommandCliArgs(t *testing.T) {
	options, rest := SplitCommandCliArgs(testExecutable, []string{"--flag", "--port", "8080", "--value=v", "--", "--flag"})
	assert.Equal(t, true, options["flag"])
	assert.Equal(t, "v", options["value"])
	assert.Equal(t, []string{"--port", "8080", "--", "--flag"}, rest)
}

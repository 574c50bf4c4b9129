package serve

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gofrogcmd "github.com/jfrog/gofrog/io"
	"github.com/ringtoolkit/ring-toolkit-core/common/configuration"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
	"github.com/ringtoolkit/ring-toolkit-core/utils/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runServe(t *testing.T, conf any, argv ...string) (*tests.RecordingRunner, *tests.RecordingLogger) {
	runner := &tests.RecordingRunner{}
	logger := tests.NewRecordingLogger()
	executable := NewExecutable(runner)
	options := configuration.ReadCommandCliArgs(executable, argv)
	require.NoError(t, executable.Command(context.Background(), conf, &components.Context{Options: options, Argv: argv}, logger))
	return runner, logger
}

func TestServeWithoutOptions(t *testing.T) {
	runner, logger := runServe(t, nil, "--port", "8080")
	assert.Equal(t, []string{"wds", "--port", "8080"}, runner.LastCommand())
	assert.Equal(t, []string{"Preparing static serve options", "Starting @web/dev-server"}, logger.Logs)
}

func TestServeStaticOptions(t *testing.T) {
	runner, logger := runServe(t, nil, "./public", "-S", "--ssl-key", "key.pem", "--open")
	assert.Equal(t, []string{
		"wds",
		"--app-index", filepath.Join("./public", "index.html"),
		"--http2",
		"--root-dir", "./public",
		"--ssl-key", "key.pem",
		"--open",
	}, runner.LastCommand())
	assert.Empty(t, logger.Warnings)
}

func TestServeSpaWithoutRootDir(t *testing.T) {
	runner, _ := runServe(t, nil, "--spa", "app.html")
	assert.Equal(t, []string{"wds", "--app-index", filepath.Join("/", "app.html")}, runner.LastCommand())
}

// Keeps the dev server configuration module passed with --config, while it still exists.
type configReadingRunner struct {
	tests.RecordingRunner
	configPath    string
	configContent string
}

func (r *configReadingRunner) Run(cmd gofrogcmd.CmdConfig) error {
	args := cmd.GetCmd().Args
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "--config" {
			r.configPath = args[i+1]
			content, err := os.ReadFile(r.configPath)
			if err != nil {
				return err
			}
			r.configContent = string(content)
		}
	}
	return r.RecordingRunner.Run(cmd)
}

func TestServeCorsMiddleware(t *testing.T) {
	testCases := []struct {
		name   string
		argv   []string
		origin string
	}{
		{"any origin", []string{"dist", "-C"}, `'Access-Control-Allow-Origin', "*"`},
		{"single origin", []string{"dist", "--cors", "https://example.com"}, `'Access-Control-Allow-Origin', "https://example.com"`},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			runner := &configReadingRunner{}
			logger := tests.NewRecordingLogger()
			executable := NewExecutable(runner)
			options := configuration.ReadCommandCliArgs(executable, testCase.argv)
			require.NoError(t, executable.Command(context.Background(), nil, &components.Context{Options: options, Argv: testCase.argv}, logger))

			assert.Equal(t, []string{"wds", "--config", runner.configPath, "--root-dir", "dist"}, runner.LastCommand())
			assert.Contains(t, runner.configContent, testCase.origin)
			assert.Contains(t, runner.configContent, "'Access-Control-Allow-Methods', 'GET'")
			assert.NoFileExists(t, runner.configPath)
			assert.Empty(t, logger.Warnings)
		})
	}
}

func TestServeCorsWithCustomConfigFile(t *testing.T) {
	runner, logger := runServe(t, nil, "-C", "--config", "wds.config.mjs")
	assert.Equal(t, []string{"wds", "--config", "wds.config.mjs"}, runner.LastCommand())
	require.Len(t, logger.Warnings, 1)
	assert.Contains(t, logger.Warnings[0], "origin *")

	runner, logger = runServe(t, map[string]any{"config": "wds.config.mjs"}, "-C")
	assert.Equal(t, []string{"wds", "--config", "wds.config.mjs"}, runner.LastCommand())
	assert.Len(t, logger.Warnings, 1)
}

func TestServeOptionsOverrideConfiguration(t *testing.T) {
	conf := map[string]any{"rootdir": "./dist", "port": 9000}
	runner, _ := runServe(t, conf, "./public")
	assert.Equal(t, []string{"wds", "--port", "9000", "--root-dir", "./public"}, runner.LastCommand())
}

func TestServeConfigurationOnly(t *testing.T) {
	runner, _ := runServe(t, map[string]any{"rootDir": "./dist"})
	assert.Equal(t, []string{"wds", "--root-dir", "./dist"}, runner.LastCommand())
}

package common

import (
	"context"
	"errors"
	"testing"

	"github.com/ringtoolkit/ring-toolkit-core/common/configuration"
	"github.com/ringtoolkit/ring-toolkit-core/utils/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWebToolWithoutConfiguration(t *testing.T) {
	runner := &tests.RecordingRunner{}
	logger := tests.NewRecordingLogger()
	err := RunWebTool(context.Background(), runner, "wds", "@web/dev-server", nil, []string{"--open"}, logger)
	assert.NoError(t, err)
	assert.Equal(t, []string{"wds", "--open"}, runner.LastCommand())
	assert.Equal(t, []string{"Starting @web/dev-server"}, logger.Logs)
}

func TestRunWebToolWithConfiguration(t *testing.T) {
	runner := &tests.RecordingRunner{}
	logger := tests.NewRecordingLogger()
	conf := []any{
		map[string]any{"rootDir": "public", "plugins": []any{"esbuild"}},
		map[string]any{"port": 9000},
	}
	err := RunWebTool(context.Background(), runner, "wtr", "@web/test-runner", conf, []string{"--watch"}, logger)
	assert.NoError(t, err)
	assert.Equal(t, []string{"wtr", "--root-dir", "public", "--watch"}, runner.LastCommand())
	assert.Len(t, logger.Warnings, 2)
}

func TestRunWebToolError(t *testing.T) {
	runner := &tests.RecordingRunner{Err: errors.New("exit status 2")}
	err := RunWebTool(context.Background(), runner, "wds", "@web/dev-server", nil, nil, tests.NewRecordingLogger())
	assert.EqualError(t, err, "exit status 2")
}

func TestRunWebToolWithFileConfiguration(t *testing.T) {
	testCases := []struct {
		file    string
		content string
	}{
		{"rtconfig.yaml", "dev:\n  rootDir: dist\n  appIndex: dist/index.html\n  nodeResolve: true\n"},
		{"rtconfig.json", `{"dev": {"rootDir": "dist", "appIndex": "dist/index.html", "nodeResolve": true}}`},
	}
	for _, testCase := range testCases {
		t.Run(testCase.file, func(t *testing.T) {
			tempDir, cleanUp := tests.CreateTempDirWithCallbackAndAssert(t)
			defer cleanUp()
			tests.WriteFile(t, tempDir, testCase.file, testCase.content)

			logger := tests.NewRecordingLogger()
			conf := configuration.ReadFileConfig("", tempDir, logger)
			require.Empty(t, logger.Errors)

			runner := &tests.RecordingRunner{}
			require.NoError(t, RunWebTool(context.Background(), runner, "wds", "@web/dev-server", conf["dev"], nil, logger))
			assert.Equal(t, []string{"wds", "--app-index", "dist/index.html", "--node-resolve", "--root-dir", "dist"}, runner.LastCommand())
		})
	}
}

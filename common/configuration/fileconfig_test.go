package configuration

import (
	"testing"

	"github.com/ringtoolkit/ring-toolkit-core/utils/tests"
	"github.com/stretchr/testify/assert"
)

func TestReadFileConfigDefaultName(t *testing.T) {
	tempDir, cleanUp := tests.CreateTempDirWithCallbackAndAssert(t)
	defer cleanUp()
	tests.WriteFile(t, tempDir, "rtconfig.yaml", "dev:\n  port: 8000\n  root-dir: public\n")
	tests.WriteFile(t, tempDir, "ring-toolkit.config.json", `{"dev": {"port": 9000}}`)

	logger := tests.NewRecordingLogger()
	config := ReadFileConfig("", tempDir, logger)
	assert.Equal(t, Configuration{"dev": map[string]any{"port": 8000, "root-dir": "public"}}, config)
	assert.Empty(t, logger.Errors)
}

func TestReadFileConfigLegacyName(t *testing.T) {
	tempDir, cleanUp := tests.CreateTempDirWithCallbackAndAssert(t)
	defer cleanUp()
	tests.WriteFile(t, tempDir, "ring-toolkit.config.json", `{"build": {"input": "src/index.js"}}`)

	config := ReadFileConfig("", tempDir, tests.NewRecordingLogger())
	assert.Equal(t, Configuration{"build": map[string]any{"input": "src/index.js"}}, config)
}

func TestReadFileConfigCustomFile(t *testing.T) {
	tempDir, cleanUp := tests.CreateTempDirWithCallbackAndAssert(t)
	defer cleanUp()
	tests.WriteFile(t, tempDir, "custom.config.json", `{"@web/dev-server": {"open": true}}`)

	for _, configFile := range []string{"custom.config.json", "custom.config", "custom.config.yaml"} {
		t.Run(configFile, func(t *testing.T) {
			config := ReadFileConfig(configFile, tempDir, tests.NewRecordingLogger())
			assert.Equal(t, Configuration{"@web/dev-server": map[string]any{"open": true}}, config)
		})
	}
}

func TestReadFileConfigNotFound(t *testing.T) {
	tempDir, cleanUp := tests.CreateTempDirWithCallbackAndAssert(t)
	defer cleanUp()

	logger := tests.NewRecordingLogger()
	assert.Empty(t, ReadFileConfig("", tempDir, logger))
	assert.Empty(t, ReadFileConfig("missing.json", tempDir, logger))
	assert.Empty(t, logger.Errors)
}

func TestReadFileConfigParseError(t *testing.T) {
	tempDir, cleanUp := tests.CreateTempDirWithCallbackAndAssert(t)
	defer cleanUp()
	tests.WriteFile(t, tempDir, "rtconfig.json", `{"dev": `)

	logger := tests.NewRecordingLogger()
	config := ReadFileConfig("", tempDir, logger)
	assert.Empty(t, config)
	if assert.Len(t, logger.Errors, 1) {
		assert.Contains(t, logger.Errors[0], "While parsing config")
	}
}

func TestReadFileConfigKeepsKeyCase(t *testing.T) {
	tempDir, cleanUp := tests.CreateTempDirWithCallbackAndAssert(t)
	defer cleanUp()
	tests.WriteFile(t, tempDir, "rtconfig.yml", "dev:\n  rootDir: dist\n  nodeResolve: true\nbuild:\n  output:\n    sourceMap: true\n")

	config := ReadFileConfig("", tempDir, tests.NewRecordingLogger())
	assert.Equal(t, Configuration{
		"dev":   map[string]any{"rootDir": "dist", "nodeResolve": true},
		"build": map[string]any{"output": map[string]any{"sourceMap": true}},
	}, config)
}

func TestReadFileConfigOtherFormatsAreLowerCased(t *testing.T) {
	tempDir, cleanUp := tests.CreateTempDirWithCallbackAndAssert(t)
	defer cleanUp()
	tests.WriteFile(t, tempDir, "rtconfig.toml", "[dev]\nrootDir = \"dist\"\n")

	config := ReadFileConfig("", tempDir, tests.NewRecordingLogger())
	assert.Equal(t, Configuration{"dev": map[string]any{"rootdir": "dist"}}, config)
}

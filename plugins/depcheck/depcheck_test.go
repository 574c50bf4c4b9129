package depcheck

import (
	"context"
	"errors"
	"testing"

	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
	"github.com/ringtoolkit/ring-toolkit-core/utils/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPackageJson = `{
  "name": "my-app",
  "dependencies": {"babel-bundle": "^1.0.0", "lodash": "^4.17.21"},
  "devDependencies": {"rollup": "^4.0.0"}
}`

func createProject(t *testing.T) (string, func()) {
	dir, cleanUp := tests.CreateTempDirWithCallbackAndAssert(t)
	tests.WriteFile(t, dir, packageJsonFile, testPackageJson)
	return dir, cleanUp
}

func TestCheckWithoutConfiguration(t *testing.T) {
	runner := &tests.RecordingRunner{}
	logger := tests.NewRecordingLogger()
	err := NewExecutable(runner).Command(context.Background(), nil, &components.Context{Argv: []string{"--skip-missing"}}, logger)
	require.NoError(t, err)
	assert.Equal(t, []string{"depcheck", "--skip-missing"}, runner.LastCommand())
	assert.Equal(t, []string{"No depcheck configuration found, falling back to Depcheck CLI"}, logger.Logs)
}

func TestCheckReportsUnusedDependencies(t *testing.T) {
	dir, cleanUp := createProject(t)
	defer cleanUp()
	runner := &tests.RecordingRunner{
		Stdout: `{"dependencies":["lodash","babel-bundle"],"devDependencies":[],"missing":{}}`,
		Err:    errors.New("exit status 255"),
	}
	logger := tests.NewRecordingLogger()
	checker := &Checker{Runner: runner, Dir: dir}

	conf := map[string]any{"ignores": []any{"rollup", "eslint"}, "ignore-patterns": "dist"}
	require.NoError(t, checker.Check(context.Background(), conf, nil, logger))

	assert.Equal(t, []string{"depcheck", dir, "--json", "--ignores=rollup,eslint", "--ignore-patterns=dist"}, runner.LastCommand())
	assert.Equal(t, dir, runner.Dirs[0])
	assert.Equal(t, []string{
		"Found 2 potentially unused dependencies: ",
		" - babel-bundle",
		" - lodash",
		"No missing dependency detected",
	}, logger.Logs)
	assert.Empty(t, logger.Errors)
}

func TestCheckFiltersAliasedSubDependencies(t *testing.T) {
	dir, cleanUp := createProject(t)
	defer cleanUp()
	runner := &tests.RecordingRunner{
		Stdout: `{"dependencies":[],"missing":{"@babel/core":["src/a.js"],"@babel/preset-env":["src/b.js"]}}`,
	}
	logger := tests.NewRecordingLogger()
	checker := &Checker{Runner: runner, Dir: dir}

	conf := map[string]any{"alias": map[string]any{"babel-bundle": "/^@babel\\//"}}
	require.NoError(t, checker.Check(context.Background(), conf, nil, logger))
	assert.Equal(t, []string{
		"Detected explicit import of babel-bundle sub-dependency.",
		"No missing dependency detected",
	}, logger.Logs)
}

func TestCheckFailsOnMissingDependencies(t *testing.T) {
	dir, cleanUp := createProject(t)
	defer cleanUp()
	runner := &tests.RecordingRunner{
		Stdout: `{"dependencies":[],"missing":{"react":["src/a.js"],"@vue/shared":["src/b.js"]}}`,
	}
	logger := tests.NewRecordingLogger()
	checker := &Checker{Runner: runner, Dir: dir}

	conf := map[string]any{"alias": map[string]any{"vue-bundle": []any{"@vue/"}}}
	err := checker.Check(context.Background(), conf, nil, logger)

	var cliError coreutils.CliError
	require.ErrorAs(t, err, &cliError)
	assert.Equal(t, coreutils.ExitCodeError, cliError.ExitCode)
	assert.Equal(t, []string{
		"Detected explicit import of vue-bundle sub-dependency.",
		"vue-bundle missing.",
		"Found 2 missing dependencies: ",
		" - @vue/shared",
		" - react",
	}, logger.Errors)
}

func TestCheckFailsWithoutOutput(t *testing.T) {
	dir, cleanUp := createProject(t)
	defer cleanUp()
	runner := &tests.RecordingRunner{Err: errors.New("executable file not found")}
	checker := &Checker{Runner: runner, Dir: dir}
	err := checker.Check(context.Background(), map[string]any{"ignores": "rollup"}, nil, tests.NewRecordingLogger())
	assert.EqualError(t, err, "executable file not found")
}

func TestReadDeclaredDependencies(t *testing.T) {
	dir, cleanUp := createProject(t)
	defer cleanUp()
	declared, err := readDeclaredDependencies(tests.WriteFile(t, dir, "other/package.json", `{"peerDependencies":{"react":"*"}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"react"}, declared)

	declared, err = readDeclaredDependencies(dir + "/" + packageJsonFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"my-app", "babel-bundle", "lodash", "rollup"}, declared)
}

func TestParseDepcheckOutputInvalid(t *testing.T) {
	_, err := parseDepcheckOutput([]byte(`{"dependencies": {"not": "an array"}}`))
	assert.Error(t, err)
}

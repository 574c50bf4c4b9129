package depcheck

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/common"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

const (
	ToolExecutable  = "depcheck"
	packageJsonFile = "package.json"

	ignoresKey        = "ignores"
	ignorePatternsKey = "ignorepatterns"
	aliasKey          = "alias"
)

var declaredDependencyKeys = []string{"dependencies", "peerDependencies", "devDependencies"}

// Checker runs depcheck in Dir, the working directory when empty.
type Checker struct {
	Runner common.Runner
	Dir    string
}

func NewExecutable(runner common.Runner) *components.Executable {
	checker := &Checker{Runner: runner}
	return &components.Executable{
		Summary: "launch depcheck",
		Command: func(ctx context.Context, configuration any, c *components.Context, logger log.Logger) error {
			return checker.Check(ctx, configuration, c.Argv, logger)
		},
	}
}

type checkResults struct {
	unused  []string
	missing []string
}

func (dc *Checker) Check(ctx context.Context, configuration any, argv []string, logger log.Logger) error {
	if coreutils.IsFalsy(configuration) {
		logger.Log("No depcheck configuration found, falling back to Depcheck CLI")
		cmd := common.NewToolCmd(ctx, ToolExecutable, argv...)
		cmd.Dir = dc.Dir
		return coreutils.ConvertExitCodeError(dc.Runner.Run(cmd))
	}

	configs, err := common.ToConfigMaps(configuration)
	if err != nil {
		return err
	}
	config := map[string]any{}
	if len(configs) > 0 {
		config = common.NormalizeKeys(configs[0])
	}
	dir, err := dc.workingDir()
	if err != nil {
		return err
	}

	var declared []string
	var results *checkResults
	errGroup, groupCtx := errgroup.WithContext(ctx)
	errGroup.Go(func() (err error) {
		declared, err = readDeclaredDependencies(filepath.Join(dir, packageJsonFile))
		return
	})
	errGroup.Go(func() (err error) {
		results, err = dc.runDepcheck(groupCtx, dir, config)
		return
	})
	if err = errGroup.Wait(); err != nil {
		return err
	}

	if len(results.unused) > 0 {
		logger.Log(fmt.Sprintf("Found %s potentially unused %s: ", coreutils.PrintBold(fmt.Sprint(len(results.unused))), dependencies(len(results.unused))))
		slices.Sort(results.unused)
		for _, dep := range results.unused {
			logger.Log(" - " + dep)
		}
	}

	missing, err := filterAliases(results.missing, declared, config[aliasKey], logger)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		logger.Error(fmt.Sprintf("Found %d missing %s: ", len(missing), dependencies(len(missing))))
		slices.Sort(missing)
		for _, dep := range missing {
			logger.Error(" - " + dep)
		}
		return coreutils.CliError{ExitCode: coreutils.ExitCodeError}
	}

	logger.Log(coreutils.PrintTitle("No missing dependency detected"))
	return nil
}

func (dc *Checker) workingDir() (string, error) {
	if dc.Dir != "" {
		return dc.Dir, nil
	}
	dir, err := os.Getwd()
	return dir, errorutils.CheckError(err)
}

func (dc *Checker) runDepcheck(ctx context.Context, dir string, config map[string]any) (*checkResults, error) {
	args := []string{dir, "--json"}
	if ignores := toStrings(config[ignoresKey]); len(ignores) > 0 {
		args = append(args, "--ignores="+strings.Join(ignores, ","))
	}
	if patterns := toStrings(config[ignorePatternsKey]); len(patterns) > 0 {
		args = append(args, "--ignore-patterns="+strings.Join(patterns, ","))
	}
	cmd := common.NewToolCmd(ctx, ToolExecutable, args...)
	cmd.Dir = dir
	output, err := dc.Runner.Output(cmd)
	// depcheck exits with an error code whenever it reports an issue.
	if strings.TrimSpace(output) == "" {
		if err == nil {
			err = errorutils.CheckErrorf("depcheck returned no output")
		}
		return nil, err
	}
	return parseDepcheckOutput([]byte(output))
}

func parseDepcheckOutput(output []byte) (*checkResults, error) {
	results := &checkResults{}
	var parseErr error
	_, err := jsonparser.ArrayEach(output, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if dataType != jsonparser.String {
			return
		}
		dep, err := jsonparser.ParseString(value)
		if err != nil {
			parseErr = err
			return
		}
		results.unused = append(results.unused, dep)
	}, "dependencies")
	if isParseError(err) || parseErr != nil {
		return nil, errorutils.CheckErrorf("failed to parse the depcheck report: %v", errors.Join(err, parseErr))
	}
	err = jsonparser.ObjectEach(output, func(key []byte, _ []byte, _ jsonparser.ValueType, _ int) error {
		results.missing = append(results.missing, string(key))
		return nil
	}, "missing")
	if isParseError(err) {
		return nil, errorutils.CheckErrorf("failed to parse the depcheck report: %s", err.Error())
	}
	return results, nil
}

// A missing key is an empty section.
func isParseError(err error) bool {
	return err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError)
}

// readDeclaredDependencies lists the package name and every declared dependency of a package.json file.
func readDeclaredDependencies(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errorutils.CheckError(err)
	}
	var declared []string
	name, err := jsonparser.GetString(content, "name")
	if isParseError(err) {
		return nil, errorutils.CheckErrorf("failed to read %s: %s", path, err.Error())
	}
	if name != "" {
		declared = append(declared, name)
	}
	for _, key := range declaredDependencyKeys {
		err = jsonparser.ObjectEach(content, func(dep []byte, _ []byte, _ jsonparser.ValueType, _ int) error {
			declared = append(declared, string(dep))
			return nil
		}, key)
		if isParseError(err) {
			return nil, errorutils.CheckErrorf("failed to read the %s of %s: %s", key, path, err.Error())
		}
	}
	return declared, nil
}

func filterAliases(missing, declared []string, aliasConfig any, logger log.Logger) ([]string, error) {
	aliases, ok := aliasConfig.(map[string]any)
	if !ok {
		return missing, nil
	}
	names := maps.Keys(aliases)
	slices.Sort(names)
	for _, alias := range names {
		result, err := detectAlias(missing, declared, alias, aliases[alias])
		if err != nil {
			return nil, err
		}
		missing = result.missing
		if !result.detected {
			continue
		}
		if result.installed {
			logger.Log("Detected explicit import of " + coreutils.PrintYellow(alias) + " sub-dependency.")
			continue
		}
		logger.Error("Detected explicit import of " + coreutils.PrintRed(alias) + " sub-dependency.")
		logger.Error(coreutils.PrintRed(alias) + " missing.")
	}
	return missing, nil
}

func toStrings(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		values := make([]string, 0, len(v))
		for _, element := range v {
			values = append(values, fmt.Sprint(element))
		}
		return values
	}
	return nil
}

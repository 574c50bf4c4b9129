package configuration

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// viper lower-cases keys. These formats are decoded again so that camelCase tool options,
// e.g. rootDir, still become --root-dir.
var caseSensitiveDecoders = map[string]func(content []byte, target any) error{
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".json": json.Unmarshal,
}

// ReadFileConfig loads the toolkit configuration file from baseDir (the working directory when empty).
// With configFile, trailing dot-separated segments are dropped until a file is found,
// so "rtconfig.custom.yaml" finds "rtconfig.custom.yaml" as well as "rtconfig.custom.json".
// Otherwise "rtconfig" then "ring-toolkit.config" are looked up.
// Failures are logged and yield an empty configuration.
func ReadFileConfig(configFile, baseDir string, logger log.Logger) Configuration {
	var candidates []string
	if configFile != "" {
		parts := strings.Split(configFile, ".")
		for len(parts) > 0 {
			candidates = append(candidates, strings.Join(parts, "."))
			parts = parts[:len(parts)-1]
		}
	} else {
		candidates = []string{coreutils.DefaultConfigBaseName, coreutils.LegacyConfigBaseName}
	}

	for _, candidate := range candidates {
		config, err := readConfig(candidate, baseDir)
		if err != nil {
			var parseError viper.ConfigParseError
			if errors.As(err, &parseError) {
				// The message is enough, no need for the error details.
				logger.Error(parseError.Error())
			} else {
				logger.Error(fmt.Sprintf("%+v", err))
			}
			return Configuration{}
		}
		if config != nil {
			logger.Debug("Loaded configuration file " + config.file)
			return config.settings
		}
	}
	return Configuration{}
}

type fileConfig struct {
	file     string
	settings Configuration
}

// readConfig returns nil when no file matches name in any supported format.
func readConfig(name, baseDir string) (*fileConfig, error) {
	if baseDir == "" {
		baseDir = "."
	}
	// Command names may contain dots, keep the configuration flat.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigName(name)
	v.AddConfigPath(baseDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		var parseError viper.ConfigParseError
		if errors.As(err, &parseError) {
			return nil, err
		}
		return nil, errorutils.CheckError(err)
	}
	file := v.ConfigFileUsed()
	decode, ok := caseSensitiveDecoders[strings.ToLower(filepath.Ext(file))]
	if !ok {
		return &fileConfig{file: file, settings: v.AllSettings()}, nil
	}
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, errorutils.CheckError(err)
	}
	settings := Configuration{}
	if err = decode(content, &settings); err != nil {
		return nil, errorutils.CheckErrorf("failed to read %s: %s", file, err.Error())
	}
	if settings == nil {
		settings = Configuration{}
	}
	return &fileConfig{file: file, settings: settings}, nil
}

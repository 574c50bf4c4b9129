package common

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ringtoolkit/ring-toolkit-core/common/configuration"
	"github.com/ringtoolkit/ring-toolkit-core/pipelines"
	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ConfigToArgs converts a tool configuration into command line flags, sorted by key.
// camelCase keys become kebab-case flags, true booleans become bare flags and false ones are omitted,
// slices repeat the flag and nested maps use dotted names.
func ConfigToArgs(config map[string]any) []string {
	return configToArgs("", config)
}

func configToArgs(prefix string, config map[string]any) []string {
	args := []string{}
	keys := maps.Keys(config)
	slices.Sort(keys)
	for _, key := range keys {
		flag := prefix + coreutils.ToKebabCase(key)
		switch value := config[key].(type) {
		case nil:
		case bool:
			if value {
				args = append(args, "--"+flag)
			}
		case map[string]any:
			args = append(args, configToArgs(flag+".", value)...)
		default:
			reflected := reflect.ValueOf(value)
			if reflected.Kind() == reflect.Slice {
				for i := 0; i < reflected.Len(); i++ {
					args = append(args, "--"+flag, fmt.Sprint(reflected.Index(i).Interface()))
				}
				continue
			}
			args = append(args, "--"+flag, fmt.Sprint(value))
		}
	}
	return args
}

// ToConfigMaps accepts a configuration map, a list of them, or any value decodable to them.
func ToConfigMaps(raw any) ([]map[string]any, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return []map[string]any{value}, nil
	case configuration.Configuration:
		return []map[string]any{value}, nil
	case []map[string]any:
		return value, nil
	case []any:
		var configs []map[string]any
		for _, element := range value {
			elementConfigs, err := ToConfigMaps(element)
			if err != nil {
				return nil, err
			}
			configs = append(configs, elementConfigs...)
		}
		return configs, nil
	}
	if kind := reflect.ValueOf(raw).Kind(); kind == reflect.Slice || kind == reflect.Array {
		var configs []map[string]any
		err := configuration.Decode(raw, &configs)
		return configs, err
	}
	config := map[string]any{}
	err := configuration.Decode(raw, &config)
	return []map[string]any{config}, err
}

// ToList returns the elements of any slice or array, such as the []pipelines.Plugin a pipeline builds.
func ToList(value any) ([]any, bool) {
	if value == nil {
		return nil, false
	}
	reflected := reflect.ValueOf(value)
	if kind := reflected.Kind(); kind != reflect.Slice && kind != reflect.Array {
		return nil, false
	}
	list := make([]any, 0, reflected.Len())
	for i := 0; i < reflected.Len(); i++ {
		list = append(list, reflected.Index(i).Interface())
	}
	return list, true
}

// NormalizeKey makes "ignore-patterns", "ignorePatterns" and "ignorepatterns" equal.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "-", ""))
}

func NormalizeKeys(config map[string]any) map[string]any {
	normalized := make(map[string]any, len(config))
	for key, value := range config {
		normalized[NormalizeKey(key)] = value
	}
	return normalized
}

// PluginName returns the command line name of a plugin produced by a pipeline.
func PluginName(plugin any) (string, bool) {
	switch value := plugin.(type) {
	case string:
		return value, value != ""
	case *pipelines.DevServerPlugin:
		return PluginName(value.Plugin)
	case fmt.Stringer:
		return value.String(), true
	}
	return "", false
}

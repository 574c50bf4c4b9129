package configuration

import (
	"context"
	"strings"

	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
)

// Configuration maps command names and aliases to their configuration entries.
type Configuration map[string]any

// Merge returns a configuration holding c's entries overlaid by overlay's.
func (c Configuration) Merge(overlay Configuration) Configuration {
	merged := make(Configuration, len(c)+len(overlay))
	for key, value := range c {
		merged[key] = value
	}
	for key, value := range overlay {
		merged[key] = value
	}
	return merged
}

// lookup falls back to the lower-cased key, as file configuration keys are case-insensitive.
func (c Configuration) lookup(key string) any {
	if value, ok := c[key]; ok {
		return value
	}
	return c[strings.ToLower(key)]
}

// AliasResolver is the part of the command registry configuration lookup needs.
type AliasResolver interface {
	GetCommandFromAlias(alias string) string
	GetAliasesForCommand(command string) []string
}

// GetAliasConfiguration resolves the configuration entry stored under alias.
func GetAliasConfiguration(ctx context.Context, configuration Configuration, alias string, options components.Options) (any, error) {
	return Resolve(ctx, configuration.lookup(alias), options)
}

// GetCommandConfiguration returns the first configuration found for the command, then for each of its aliases.
// Nil is returned when none is found.
func GetCommandConfiguration(ctx context.Context, registry AliasResolver, command string, configuration Configuration, options components.Options) (any, error) {
	realCommand := registry.GetCommandFromAlias(command)
	aliases := append([]string{realCommand}, registry.GetAliasesForCommand(realCommand)...)
	for _, alias := range aliases {
		commandConfiguration, err := GetAliasConfiguration(ctx, configuration, alias, options)
		if err != nil {
			return nil, err
		}
		if !coreutils.IsFalsy(commandConfiguration) {
			return commandConfiguration, nil
		}
	}
	return nil, nil
}

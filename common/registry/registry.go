package registry

import (
	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
	"golang.org/x/exp/slices"
)

// Entry is a registered command with its executable and aliases.
type Entry struct {
	Command    string
	Executable *components.Executable
	Aliases    []string
}

// CommandRegistry maps command names to executables and aliases to command names.
// An alias belongs to at most one command and never shadows a command name.
type CommandRegistry struct {
	logger     log.Logger
	commandMap map[string]*components.Executable
	aliasMap   map[string][]string
	// Registration order, used for listing.
	commands []string
}

// New creates a registry. The initial entries go through RegisterCommand, in order.
func New(logger log.Logger, initial ...Entry) *CommandRegistry {
	registry := &CommandRegistry{logger: logger}
	registry.ClearCommands()
	for _, entry := range initial {
		registry.RegisterCommand(entry.Executable, entry.Command, entry.Aliases...)
	}
	return registry
}

func (r *CommandRegistry) GetCommands() []Entry {
	entries := make([]Entry, 0, len(r.commands))
	for _, command := range r.commands {
		entries = append(entries, Entry{
			Command:    command,
			Executable: r.commandMap[command],
			Aliases:    r.GetAliasesForCommand(command),
		})
	}
	return entries
}

func (r *CommandRegistry) GetAliasesForCommand(command string) []string {
	return slices.Clone(r.aliasMap[command])
}

// GetCommandFromAlias returns the command owning the alias. Command names and unknown names are returned as is.
func (r *CommandRegistry) GetCommandFromAlias(alias string) string {
	if _, ok := r.commandMap[alias]; ok {
		return alias
	}
	for _, command := range r.commands {
		if slices.Contains(r.aliasMap[command], alias) {
			return command
		}
	}
	return alias
}

func (r *CommandRegistry) GetExecutableForCommand(command string) (*components.Executable, bool) {
	executable, ok := r.commandMap[r.GetCommandFromAlias(command)]
	return executable, ok
}

// RegisterCommand registers the executable under command with the given aliases.
// Conflicts are never fatal: overriding a command, moving an alias to a new command and
// dropping aliases that clash with commands are reported through the logger.
func (r *CommandRegistry) RegisterCommand(executable *components.Executable, command string, aliases ...string) {
	if _, ok := r.commandMap[command]; ok {
		r.logger.Warn("Overriding already registered command: " + coreutils.PrintTitle(command))
	}

	for _, registered := range r.commands {
		r.aliasMap[registered] = slices.DeleteFunc(slices.Clone(r.aliasMap[registered]), func(alias string) bool {
			if registered != command && slices.Contains(aliases, alias) {
				r.logger.Warn("Remapping alias " + coreutils.PrintYellow(alias) + " from command " + coreutils.PrintYellow(registered) + " to command " + coreutils.PrintTitle(command))
				return true
			}
			if alias == command {
				r.logger.Warn("Removing alias " + coreutils.PrintYellow(alias) + " from command " + coreutils.PrintYellow(registered))
				return true
			}
			return false
		})
	}

	cleanAliases := []string{}
	for _, alias := range aliases {
		if _, ok := r.commandMap[alias]; ok || alias == command {
			r.logger.Error("Cannot register alias " + coreutils.PrintYellow(alias) + " as it is used as a command")
			continue
		}
		if slices.Contains(cleanAliases, alias) {
			continue
		}
		cleanAliases = append(cleanAliases, alias)
	}

	if _, ok := r.commandMap[command]; !ok {
		r.commands = append(r.commands, command)
	}
	r.commandMap[command] = executable
	r.aliasMap[command] = cleanAliases
}

// ClearCommands removes every command and alias.
func (r *CommandRegistry) ClearCommands() {
	r.commandMap = make(map[string]*components.Executable)
	r.aliasMap = make(map[string][]string)
	r.commands = nil
}

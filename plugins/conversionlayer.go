package plugins

import (
	"github.com/ringtoolkit/ring-toolkit-core/common/registry"
	"github.com/ringtoolkit/ring-toolkit-core/docs/common"
)

// commandRows converts the registered commands to the global help table, in registration order.
func commandRows(commandRegistry *registry.CommandRegistry) []common.CommandRow {
	var rows []common.CommandRow
	for _, entry := range commandRegistry.GetCommands() {
		rows = append(rows, common.CommandRow{
			Command: entry.Command,
			Aliases: entry.Aliases,
			Summary: entry.Executable.Summary,
		})
	}
	return rows
}

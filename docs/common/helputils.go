package common

import (
	"bytes"
	"io"
	"strings"

	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
	"github.com/urfave/cli"
)

const (
	ToolkitTitle       = "Ring Toolkit — All-in-one extensible Web Development toolkit"
	NoCommandAvailable = "No command available. Call RegisterCommand to register a command."
)

func CreateUsage(command string, name string, commands []string) string {
	var usage string
	for _, cmd := range commands {
		usage += coreutils.GetCliExecutableName() + " " + cmd + "\n\t"
	}
	return "\nName:\n\t" + coreutils.GetCliExecutableName() + " " + command + " - " + name + "\n\nUsage:\n\t" + usage
}

// CommandRow is a line of the global help commands table.
type CommandRow struct {
	Command string   `col-name:"Command"`
	Aliases []string `col-name:"Aliases"`
	Summary string   `col-name:"Summary" col-max-width:"60"`
}

type globalHelp struct {
	Title        string
	Usage        string
	Commands     string
	HelpCommands []string
	SharedFlags  []cli.Flag
}

// PrintGlobalHelp lists the registered commands and the shared options.
func PrintGlobalHelp(out io.Writer, commands []CommandRow, sharedFlags []cli.Flag) error {
	commandsTable := &bytes.Buffer{}
	if err := coreutils.PrintTable(commandsTable, commands, "", NoCommandAvailable); err != nil {
		return err
	}
	var helpCommands []string
	for i := 0; i < len(commands) && i < 2; i++ {
		helpCommands = append(helpCommands, coreutils.GetCliExecutableName()+" "+commands[i].Command+" --help")
	}
	cli.HelpPrinter(out, GlobalHelpTemplate, globalHelp{
		Title:        coreutils.PrintBoldTitle(ToolkitTitle),
		Usage:        coreutils.GetCliExecutableName() + " <command> [options]",
		Commands:     strings.TrimSuffix(commandsTable.String(), "\n"),
		HelpCommands: helpCommands,
		SharedFlags:  sharedFlags,
	})
	return nil
}

type commandHelp struct {
	cli.Command
	SharedFlags []cli.Flag
}

// PrintCommandHelp renders a converted command with the shared options appended.
func PrintCommandHelp(out io.Writer, command cli.Command, sharedFlags []cli.Flag) {
	cli.HelpPrinter(out, CommandHelpTemplate, commandHelp{Command: command, SharedFlags: sharedFlags})
}

package tests

import (
	"strings"

	"github.com/jfrog/jfrog-client-go/utils/log"
)

// ToolkitCli runs the toolkit entry point with a fixed argument prefix.
type ToolkitCli struct {
	main   func(args []string) error
	prefix string
}

func NewToolkitCli(mainFunc func(args []string) error, prefix string) *ToolkitCli {
	return &ToolkitCli{mainFunc, prefix}
}

func (cli *ToolkitCli) SetPrefix(prefix string) *ToolkitCli {
	cli.prefix = prefix
	return cli
}

func (cli *ToolkitCli) Exec(args ...string) error {
	spaceSplit := " "
	var fullArgs []string
	if cli.prefix != "" {
		fullArgs = strings.Split(cli.prefix, spaceSplit)
	}
	for _, v := range args {
		if v == "" {
			continue
		}
		fullArgs = append(fullArgs, v)
	}
	log.Info("[Command]", strings.Join(fullArgs, " "))
	return cli.main(fullArgs)
}

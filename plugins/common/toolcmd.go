package common

import (
	"context"
	"io"
	"os/exec"

	gofrogcmd "github.com/jfrog/gofrog/io"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

// ToolCmd is the command line of a wrapped tool.
type ToolCmd struct {
	Ctx        context.Context
	Executable string
	Args       []string
	Dir        string
	Env        map[string]string
	StrWriter  io.WriteCloser
	ErrWriter  io.WriteCloser
}

func NewToolCmd(ctx context.Context, executable string, args ...string) *ToolCmd {
	return &ToolCmd{Ctx: ctx, Executable: executable, Args: args}
}

func (toolCmd *ToolCmd) GetCmd() *exec.Cmd {
	ctx := toolCmd.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, toolCmd.Executable, toolCmd.Args...)
	cmd.Dir = toolCmd.Dir
	return cmd
}

func (toolCmd *ToolCmd) GetEnv() map[string]string {
	return toolCmd.Env
}

func (toolCmd *ToolCmd) GetStdWriter() io.WriteCloser {
	return toolCmd.StrWriter
}

func (toolCmd *ToolCmd) GetErrWriter() io.WriteCloser {
	return toolCmd.ErrWriter
}

// Runner starts wrapped tools.
type Runner interface {
	// Run streams the tool's output to the terminal.
	Run(cmd gofrogcmd.CmdConfig) error
	// Output returns what the tool wrote to stdout, also when it exited with an error.
	Output(cmd gofrogcmd.CmdConfig) (string, error)
}

type processRunner struct{}

func NewProcessRunner() Runner {
	return processRunner{}
}

func (processRunner) Run(cmd gofrogcmd.CmdConfig) error {
	log.Debug("Running:", cmd.GetCmd().String())
	return gofrogcmd.RunCmd(cmd)
}

func (processRunner) Output(cmd gofrogcmd.CmdConfig) (string, error) {
	log.Debug("Running:", cmd.GetCmd().String())
	return gofrogcmd.RunCmdOutput(cmd)
}

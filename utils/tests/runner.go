package tests

import (
	gofrogcmd "github.com/jfrog/gofrog/io"
)

// RecordingRunner records the command lines of the tools it is asked to start, without starting them.
type RecordingRunner struct {
	Commands [][]string
	Dirs     []string
	// Returned by Output.
	Stdout string
	Err    error
}

func (r *RecordingRunner) Run(cmd gofrogcmd.CmdConfig) error {
	r.record(cmd)
	return r.Err
}

func (r *RecordingRunner) Output(cmd gofrogcmd.CmdConfig) (string, error) {
	r.record(cmd)
	return r.Stdout, r.Err
}

func (r *RecordingRunner) record(cmd gofrogcmd.CmdConfig) {
	execCmd := cmd.GetCmd()
	r.Commands = append(r.Commands, append([]string{}, execCmd.Args...))
	r.Dirs = append(r.Dirs, execCmd.Dir)
}

// LastCommand returns the last recorded command line, nil when nothing ran.
func (r *RecordingRunner) LastCommand() []string {
	if len(r.Commands) == 0 {
		return nil
	}
	return r.Commands[len(r.Commands)-1]
}

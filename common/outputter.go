package common

import (
	"fmt"
	"io"
	"os"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
)

type ICommandResult interface {
	GetOutput() string
}

type OutputFormatter interface {
	SetError(err error)
	SetCommandResult(result ICommandResult)
	WriteOutput()
}

type cliOutput struct {
	errorOutput   error
	commandOutput ICommandResult
	stdout        io.Writer
	stderr        io.Writer
	exit          func(code int)
}

var _ OutputFormatter = (*cliOutput)(nil)

func InitializeOutputter(cmd *cobra.Command) OutputFormatter {
	return &cliOutput{
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
		exit:   os.Exit,
	}
}

func (o *cliOutput) SetError(err error) {
	o.errorOutput = err
}

func (o *cliOutput) SetCommandResult(result ICommandResult) {
	o.commandOutput = result
}

// WriteOutput prints the result or the error. An error terminates the process with a non-zero code
func (o *cliOutput) WriteOutput() {
	if o.errorOutput != nil {
		_, _ = fmt.Fprintf(o.stderr, "Error: %s\n", o.errorOutput.Error())

		o.exit(1)

		return
	}

	if o.commandOutput != nil {
		_, _ = fmt.Fprintln(o.stdout, o.commandOutput.GetOutput())
	}
}

func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}

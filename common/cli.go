package common

import "github.com/spf13/cobra"

type CliCommandExecutor interface {
	Execute() (ICommandResult, error)
}

func GetCliRunCommand(executor CliCommandExecutor) func(cmd *cobra.Command, _ []string) {
	return func(cmd *cobra.Command, _ []string) {
		outputter := InitializeOutputter(cmd)
		defer outputter.WriteOutput()

		results, err := executor.Execute()
		if err != nil {
			outputter.SetError(err)

			return
		}

		outputter.SetCommandResult(results)
	}
}

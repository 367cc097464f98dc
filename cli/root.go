package cli

import (
	"fmt"
	"os"

	clichainapi "github.com/Ethernal-Tech/cosmos-chain-api/cli/chainapi"
	cligenerateconfigs "github.com/Ethernal-Tech/cosmos-chain-api/cli/generateconfigs"
	cliversion "github.com/Ethernal-Tech/cosmos-chain-api/cli/version"
	"github.com/spf13/cobra"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Short: "cli commands for cosmos chain api",
		},
	}

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		clichainapi.GetRunChainAPICommand(),
		cligenerateconfigs.GetGenerateConfigsCommand(),
		cliversion.GetVersionCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}

package clichainapi

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	loggerInfra "github.com/Ethernal-Tech/cardano-infrastructure/logger"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"
	"github.com/Ethernal-Tech/cosmos-chain-api/common"
	"github.com/spf13/cobra"
)

var initParamsData = &initParams{}

func GetRunChainAPICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run-chain-api",
		Short:   "runs the chain info api",
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	initParamsData.setFlags(cmd)

	return cmd
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return initParamsData.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := common.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	config, err := common.LoadConfig[core.AppConfig](initParamsData.config, "")
	if err != nil {
		outputter.SetError(err)

		return
	}

	if err := config.Validate(); err != nil {
		outputter.SetError(fmt.Errorf("invalid config:\n%w", err))

		return
	}

	logger, err := loggerInfra.NewLogger(config.Settings.Logger)
	if err != nil {
		outputter.SetError(err)

		return
	}

	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	chainAPI, err := chainapi.NewChainAPI(ctx, config, logger)
	if err != nil {
		logger.Error("chain api creation failed", "err", err)
		outputter.SetError(err)

		return
	}

	if err := chainAPI.Start(); err != nil {
		logger.Error("chain api start failed", "err", err)
		outputter.SetError(err)

		return
	}

	logger.Info("Chain api started",
		"port", config.APIConfig.Port, "chainApiServer", config.ChainAPIServer, "hrpPrefix", config.HRPPrefix)

	signalChannel := make(chan os.Signal, 1)
	// Notify the signalChannel when the interrupt signal is received (Ctrl+C)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel

	if err := chainAPI.Stop(); err != nil {
		logger.Error("chain api stop failed", "err", err)
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(&CmdResult{port: config.APIConfig.Port})
}

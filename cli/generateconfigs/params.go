package cligenerateconfigs

import (
	"errors"
	"fmt"
	"net/http"
	"path"

	"github.com/Ethernal-Tech/cardano-infrastructure/logger"
	apiCore "github.com/Ethernal-Tech/cosmos-chain-api/api/core"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"
	"github.com/Ethernal-Tech/cosmos-chain-api/common"
	"github.com/Ethernal-Tech/cosmos-chain-api/telemetry"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

const (
	chainAPIServerFlag   = "chain-api-server"
	coinDenominationFlag = "coin-denomination"
	hrpPrefixFlag        = "hrp-prefix"

	refreshIntervalFlag = "validator-set-refresh-interval"
	upstreamTimeoutFlag = "upstream-timeout"

	logsPathFlag = "logs-path"

	apiPortFlag       = "api-port"
	apiPathPrefixFlag = "api-path-prefix"

	prometheusAddrFlag = "prometheus-addr"
	dataDogAddrFlag    = "datadog-addr"

	outputDirFlag      = "output-dir"
	outputFileNameFlag = "output-file-name"

	chainAPIServerFlagDesc   = "(Mandatory) URL to network's API server, e.g. https://rest.cosmos.directory/cosmoshub"
	coinDenominationFlagDesc = "(Mandatory) Network coin denomination, e.g. 6 for uatom"
	hrpPrefixFlagDesc        = "(Mandatory) Address prefix for wallets, e.g. cosmos"

	refreshIntervalFlagDesc = "Validator set refresh interval in seconds"
	upstreamTimeoutFlagDesc = "Timeout of a single request to the API server in seconds"

	logsPathFlagDesc = "Path to where logs will be stored"

	apiPortFlagDesc       = "Port at which API should run"
	apiPathPrefixFlagDesc = "Path prefix of all API endpoints"

	prometheusAddrFlagDesc = "Prometheus scrape endpoint address, e.g. 0.0.0.0:5001 (disabled when empty)"
	dataDogAddrFlagDesc    = "DataDog agent address, e.g. localhost:8126 (disabled when empty)"

	outputDirFlagDesc      = "Path to config json output directory"
	outputFileNameFlagDesc = "Config json output file name"

	defaultLogsPath       = "./logs"
	defaultAPIPort        = 8000
	defaultOutputDir      = "./"
	defaultOutputFileName = "config.json"
)

type generateConfigsParams struct {
	chainAPIServer   string
	coinDenomination uint32
	hrpPrefix        string

	refreshInterval uint64
	upstreamTimeout uint64

	logsPath string

	apiPort       uint32
	apiPathPrefix string

	prometheusAddr string
	dataDogAddr    string

	outputDir      string
	outputFileName string
}

func (p *generateConfigsParams) validateFlags() error {
	if !common.IsValidHTTPURL(p.chainAPIServer) {
		return fmt.Errorf("invalid %s: %s", chainAPIServerFlag, p.chainAPIServer)
	}

	if p.coinDenomination == 0 || p.coinDenomination > core.MaxCoinDenomination {
		return fmt.Errorf("invalid %s: %d", coinDenominationFlag, p.coinDenomination)
	}

	if p.hrpPrefix == "" {
		return fmt.Errorf("missing %s", hrpPrefixFlag)
	}

	if p.apiPort == 0 {
		return fmt.Errorf("invalid %s: %d", apiPortFlag, p.apiPort)
	}

	if p.outputFileName == "" {
		return errors.New("missing " + outputFileNameFlag)
	}

	return nil
}

func (p *generateConfigsParams) setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&p.chainAPIServer,
		chainAPIServerFlag,
		"",
		chainAPIServerFlagDesc,
	)
	cmd.Flags().Uint32Var(
		&p.coinDenomination,
		coinDenominationFlag,
		0,
		coinDenominationFlagDesc,
	)
	cmd.Flags().StringVar(
		&p.hrpPrefix,
		hrpPrefixFlag,
		"",
		hrpPrefixFlagDesc,
	)

	cmd.Flags().Uint64Var(
		&p.refreshInterval,
		refreshIntervalFlag,
		core.DefaultValidatorSetRefreshIntervalSec,
		refreshIntervalFlagDesc,
	)
	cmd.Flags().Uint64Var(
		&p.upstreamTimeout,
		upstreamTimeoutFlag,
		core.DefaultUpstreamTimeoutSec,
		upstreamTimeoutFlagDesc,
	)

	cmd.Flags().StringVar(
		&p.logsPath,
		logsPathFlag,
		defaultLogsPath,
		logsPathFlagDesc,
	)

	cmd.Flags().Uint32Var(
		&p.apiPort,
		apiPortFlag,
		defaultAPIPort,
		apiPortFlagDesc,
	)
	cmd.Flags().StringVar(
		&p.apiPathPrefix,
		apiPathPrefixFlag,
		"",
		apiPathPrefixFlagDesc,
	)

	cmd.Flags().StringVar(
		&p.prometheusAddr,
		prometheusAddrFlag,
		"",
		prometheusAddrFlagDesc,
	)
	cmd.Flags().StringVar(
		&p.dataDogAddr,
		dataDogAddrFlag,
		"",
		dataDogAddrFlagDesc,
	)

	cmd.Flags().StringVar(
		&p.outputDir,
		outputDirFlag,
		defaultOutputDir,
		outputDirFlagDesc,
	)
	cmd.Flags().StringVar(
		&p.outputFileName,
		outputFileNameFlag,
		defaultOutputFileName,
		outputFileNameFlagDesc,
	)
}

func (p *generateConfigsParams) Execute() (common.ICommandResult, error) {
	config := &core.AppConfig{
		ChainAPIServer:                 p.chainAPIServer,
		CoinDenomination:               p.coinDenomination,
		HRPPrefix:                      p.hrpPrefix,
		ValidatorSetRefreshIntervalSec: p.refreshInterval,
		UpstreamTimeoutSec:             p.upstreamTimeout,
		APIConfig: apiCore.APIConfig{
			Port:           p.apiPort,
			PathPrefix:     p.apiPathPrefix,
			AllowedHeaders: []string{"Content-Type"},
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		},
		Settings: core.AppSettings{
			Logger: logger.LoggerConfig{
				LogFilePath:   path.Join(p.logsPath, "chain-api.log"),
				LogLevel:      hclog.Debug,
				JSONLogFormat: false,
				AppendFile:    true,
			},
		},
		Telemetry: telemetry.TelemetryConfig{
			PrometheusAddr: p.prometheusAddr,
			DataDogAddr:    p.dataDogAddr,
			PullTime:       telemetry.DefaultPullTime,
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("generated config is invalid: %w", err)
	}

	outputDirPath := path.Clean(p.outputDir)
	if err := common.CreateDirectoryIfNotExists(outputDirPath); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	configPath := path.Join(outputDirPath, p.outputFileName)
	if err := common.SaveJSON(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to create chain api config json: %w", err)
	}

	return &CmdResult{
		chainAPIConfigPath: configPath,
	}, nil
}

package chainapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ethernal-Tech/cosmos-chain-api/api"
	apiCore "github.com/Ethernal-Tech/cosmos-chain-api/api/core"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/api/controllers"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/chain"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/validatorset"
	"github.com/Ethernal-Tech/cosmos-chain-api/telemetry"
	"github.com/hashicorp/go-hclog"
)

type ChainAPIImpl struct {
	ctx               context.Context
	cancelCtx         context.CancelFunc
	api               *api.APIImpl
	chainStatusWorker *ChainStatusWorker
	telemetry         *telemetry.Telemetry
	logger            hclog.Logger
}

var _ core.ChainAPI = (*ChainAPIImpl)(nil)

func NewChainAPI(
	ctx context.Context,
	appConfig *core.AppConfig,
	logger hclog.Logger,
) (*ChainAPIImpl, error) {
	chainClient := chain.NewClient(
		appConfig.ChainAPIServer, appConfig.UpstreamTimeout(), logger.Named("chain_client"))

	validatorSetCache := validatorset.NewCache(
		chainClient, appConfig.CoinDenomination, appConfig.HRPPrefix,
		appConfig.ValidatorSetRefreshInterval(), logger.Named("validator_set_cache"))

	apiControllers := []apiCore.APIController{
		controllers.NewChainController(
			chainClient, logger.Named("chain_controller")),
		controllers.NewValidatorsController(
			validatorSetCache, chainClient, logger.Named("validators_controller")),
		controllers.NewAddressController(
			chainClient, appConfig.CoinDenomination, logger.Named("address_controller")),
	}

	ctx, cancelCtx := context.WithCancel(ctx)

	apiObj, err := api.NewAPI(ctx, appConfig.APIConfig, apiControllers, logger.Named("api"))
	if err != nil {
		cancelCtx()

		return nil, fmt.Errorf("failed to create api: %w", err)
	}

	pullTime := appConfig.Telemetry.PullTime
	if pullTime <= 0 {
		pullTime = telemetry.DefaultPullTime
	}

	return &ChainAPIImpl{
		ctx:               ctx,
		cancelCtx:         cancelCtx,
		api:               apiObj,
		chainStatusWorker: NewChainStatusWorker(chainClient, pullTime, logger.Named("chain_status_worker")),
		telemetry:         telemetry.NewTelemetry(appConfig.Telemetry, logger.Named("telemetry")),
		logger:            logger,
	}, nil
}

func (c *ChainAPIImpl) Start() error {
	c.logger.Debug("Starting ChainAPI")

	if err := c.telemetry.Start(); err != nil {
		return fmt.Errorf("failed to start telemetry: %w", err)
	}

	if c.telemetry.IsEnabled() {
		go c.chainStatusWorker.Start(c.ctx)
	}

	go c.api.Start()

	c.logger.Debug("Started ChainAPI")

	return nil
}

func (c *ChainAPIImpl) Stop() error {
	c.logger.Info("Stopping ChainAPI")

	errs := make([]error, 0)

	if err := c.api.Dispose(); err != nil {
		c.logger.Error("error while disposing api", "err", err)
		errs = append(errs, fmt.Errorf("error while disposing api. err: %w", err))
	}

	c.cancelCtx()

	if err := c.telemetry.Close(context.Background()); err != nil {
		c.logger.Error("Failed to close telemetry", "err", err)
		errs = append(errs, fmt.Errorf("failed to close telemetry. err: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors while stopping chain api. errors: %w", errors.Join(errs...))
	}

	c.logger.Info("ChainAPI stopped")

	return nil
}

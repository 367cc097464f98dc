package chainapi

import (
	"context"
	"time"

	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"
	"github.com/Ethernal-Tech/cosmos-chain-api/telemetry"
	"github.com/hashicorp/go-hclog"
)

// ChainStatusWorker periodically publishes the chain node's latest block height and availability
type ChainStatusWorker struct {
	chainClient core.ChainClient
	waitTime    time.Duration
	latestBlock uint64
	available   *bool
	logger      hclog.Logger
}

func NewChainStatusWorker(
	chainClient core.ChainClient,
	waitTime time.Duration,
	logger hclog.Logger,
) *ChainStatusWorker {
	return &ChainStatusWorker{
		chainClient: chainClient,
		waitTime:    waitTime,
		logger:      logger,
	}
}

func (w *ChainStatusWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.waitTime):
			w.execute(ctx)
		}
	}
}

func (w *ChainStatusWorker) execute(ctx context.Context) {
	height, err := w.chainClient.GetLatestBlockHeight(ctx)
	if err != nil {
		w.logger.Warn("failed to retrieve latest block height", "err", err)
	} else if height != w.latestBlock {
		w.latestBlock = height

		telemetry.UpdateChainBlockHeight(height)
	}

	if available := err == nil; w.available == nil || *w.available != available {
		w.available = &available

		telemetry.UpdateChainNodeAvailable(available)
	}
}

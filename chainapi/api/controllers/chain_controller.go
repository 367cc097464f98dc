package controllers

import (
	"fmt"
	"net/http"

	apiCore "github.com/Ethernal-Tech/cosmos-chain-api/api/core"
	apiUtils "github.com/Ethernal-Tech/cosmos-chain-api/api/utils"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/api/model/response"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"
	"github.com/hashicorp/go-hclog"
)

type ChainControllerImpl struct {
	chainClient core.ChainClient
	logger      hclog.Logger
}

var _ apiCore.APIController = (*ChainControllerImpl)(nil)

func NewChainController(
	chainClient core.ChainClient,
	logger hclog.Logger,
) *ChainControllerImpl {
	return &ChainControllerImpl{
		chainClient: chainClient,
		logger:      logger,
	}
}

func (*ChainControllerImpl) GetPathPrefix() string {
	return ""
}

func (c *ChainControllerImpl) GetEndpoints() []*apiCore.APIEndpoint {
	return []*apiCore.APIEndpoint{
		{Path: "block_height", Method: http.MethodGet, Handler: c.getBlockHeight},
	}
}

// @Summary Get current block height
// @Description Returns the height of the latest block known to the chain node.
// @Tags Chain
// @Produce json
// @Success 200 {object} response.BlockHeightResponse "OK"
// @Failure 502 {object} response.ErrorResponse "Chain node request failed"
// @Router /block_height [get]
func (c *ChainControllerImpl) getBlockHeight(w http.ResponseWriter, r *http.Request) {
	c.logger.Debug("getBlockHeight request", "url", r.URL)

	height, err := c.chainClient.GetLatestBlockHeight(r.Context())
	if err != nil {
		apiUtils.WriteErrorResponse(
			w, r, http.StatusBadGateway,
			fmt.Errorf("get latest block height: %w", err), c.logger)

		return
	}

	apiUtils.WriteResponse(w, r, http.StatusOK, response.NewBlockHeightResponse(height), c.logger)
}

package controllers

import (
	"context"
	"fmt"
	"net/http"

	apiCore "github.com/Ethernal-Tech/cosmos-chain-api/api/core"
	apiUtils "github.com/Ethernal-Tech/cosmos-chain-api/api/utils"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/api/model/response"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/utils"
	"github.com/Ethernal-Tech/cosmos-chain-api/common"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"
)

const addressPathVar = "address"

type AddressControllerImpl struct {
	chainClient      core.ChainClient
	coinDenomination uint32
	logger           hclog.Logger
}

var _ apiCore.APIController = (*AddressControllerImpl)(nil)

func NewAddressController(
	chainClient core.ChainClient,
	coinDenomination uint32,
	logger hclog.Logger,
) *AddressControllerImpl {
	return &AddressControllerImpl{
		chainClient:      chainClient,
		coinDenomination: coinDenomination,
		logger:           logger,
	}
}

func (*AddressControllerImpl) GetPathPrefix() string {
	return "address"
}

func (c *AddressControllerImpl) GetEndpoints() []*apiCore.APIEndpoint {
	return []*apiCore.APIEndpoint{
		{Path: "{" + addressPathVar + "}", Method: http.MethodGet, Handler: c.getAddress},
	}
}

// @Summary Get information about an address
// @Description Returns balance, delegated amount, number of delegations and pending rewards of an account.
// @Description An address the chain node rejects is reported with balance -1.
// @Tags Address
// @Produce json
// @Param address path string true "Account address"
// @Success 200 {object} response.AddressResponse "OK"
// @Failure 502 {object} response.ErrorResponse "Chain node request failed"
// @Router /address/{address} [get]
func (c *AddressControllerImpl) getAddress(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)[addressPathVar]
	c.logger.Debug("getAddress request", "address", address, "url", r.URL)

	summary, err := c.getAddressSummary(r.Context(), address)
	if err != nil {
		apiUtils.WriteErrorResponse(
			w, r, http.StatusBadGateway,
			fmt.Errorf("get address %s: %w", address, err), c.logger)

		return
	}

	apiUtils.WriteResponse(w, r, http.StatusOK, response.NewAddressResponse(summary), c.logger)
}

func (c *AddressControllerImpl) getAddressSummary(ctx context.Context, address string) (core.AddressSummary, error) {
	var (
		balances                                []core.ChainCoin
		delegations                             []core.ChainDelegationResponse
		rewards                                 *core.ChainRewardsResponse
		balancesErr, delegationsErr, rewardsErr error
		group                                   errgroup.Group
	)

	group.Go(func() error {
		balances, balancesErr = c.chainClient.GetBalances(ctx, address)

		return balancesErr
	})

	group.Go(func() error {
		delegations, delegationsErr = c.chainClient.GetDelegations(ctx, address)

		return delegationsErr
	})

	group.Go(func() error {
		rewards, rewardsErr = c.chainClient.GetRewards(ctx, address)

		return rewardsErr
	})

	err := group.Wait()

	for _, callErr := range []error{balancesErr, delegationsErr, rewardsErr} {
		if common.IsUpstreamCodeError(callErr) {
			c.logger.Debug("Address rejected by chain node", "address", address, "err", callErr)

			return core.NewAccountNotFoundSummary(), nil
		}
	}

	if err != nil {
		return core.AddressSummary{}, err
	}

	return utils.NewAddressSummary(balances, delegations, rewards, c.coinDenomination)
}

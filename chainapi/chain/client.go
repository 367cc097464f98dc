package chain

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"
	"github.com/Ethernal-Tech/cosmos-chain-api/common"
	"github.com/Ethernal-Tech/cosmos-chain-api/telemetry"
	"github.com/hashicorp/go-hclog"
)

const (
	latestValidatorSetPath      = "/cosmos/base/tendermint/v1beta1/validatorsets/latest"
	validatorsPath              = "/cosmos/staking/v1beta1/validators"
	stakingParamsPath           = "/cosmos/staking/v1beta1/params"
	balancesPathFmt             = "/cosmos/bank/v1beta1/balances/%s"
	delegationsPathFmt          = "/cosmos/staking/v1beta1/delegations/%s"
	rewardsPathFmt              = "/cosmos/distribution/v1beta1/delegators/%s/rewards"
	validatorDelegationsPathFmt = "/cosmos/staking/v1beta1/validators/%s/delegations"

	bondStatusBonded = "BOND_STATUS_BONDED"

	paginationKeyParam        = "pagination.key"
	paginationCountTotalParam = "pagination.count_total"

	// upper bound of followed pages, protects against a node returning the same next_key forever
	maxPages = 10_000
)

type ClientImpl struct {
	baseURL    string
	httpClient *http.Client
	logger     hclog.Logger
}

var _ core.ChainClient = (*ClientImpl)(nil)

func NewClient(baseURL string, timeout time.Duration, logger hclog.Logger) *ClientImpl {
	return &ClientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *ClientImpl) GetLatestBlockHeight(ctx context.Context) (uint64, error) {
	resp, err := get[core.ChainLatestValidatorSetResponse](ctx, c, "block_height", latestValidatorSetPath, nil)
	if err != nil {
		return 0, err
	}

	height, err := strconv.ParseUint(resp.BlockHeight, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block height %q: %w", resp.BlockHeight, err)
	}

	return height, nil
}

func (c *ClientImpl) GetBondedValidators(ctx context.Context) ([]core.ChainValidator, error) {
	query := url.Values{"status": []string{bondStatusBonded}}

	return getAllPages(ctx, c, "validators", validatorsPath, query,
		func(resp core.ChainValidatorsResponse) ([]core.ChainValidator, string) {
			return resp.Validators, resp.Pagination.NextKey
		})
}

func (c *ClientImpl) GetStakingParams(ctx context.Context) (core.ChainStakingParams, error) {
	resp, err := get[core.ChainStakingParamsResponse](ctx, c, "staking_params", stakingParamsPath, nil)
	if err != nil {
		return core.ChainStakingParams{}, err
	}

	return resp.Params, nil
}

func (c *ClientImpl) GetBalances(ctx context.Context, address string) ([]core.ChainCoin, error) {
	path := fmt.Sprintf(balancesPathFmt, url.PathEscape(address))

	return getAllPages(ctx, c, "balances", path, nil,
		func(resp core.ChainBalancesResponse) ([]core.ChainCoin, string) {
			return resp.Balances, resp.Pagination.NextKey
		})
}

func (c *ClientImpl) GetDelegations(ctx context.Context, address string) ([]core.ChainDelegationResponse, error) {
	path := fmt.Sprintf(delegationsPathFmt, url.PathEscape(address))

	return getAllPages(ctx, c, "delegations", path, nil,
		func(resp core.ChainDelegationsResponse) ([]core.ChainDelegationResponse, string) {
			return resp.DelegationResponses, resp.Pagination.NextKey
		})
}

func (c *ClientImpl) GetRewards(ctx context.Context, address string) (*core.ChainRewardsResponse, error) {
	path := fmt.Sprintf(rewardsPathFmt, url.PathEscape(address))

	resp, err := get[core.ChainRewardsResponse](ctx, c, "rewards", path, nil)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetValidatorDelegatorsCount asks the node to count the delegations. Nodes that do not fill
// pagination.total get their delegation pages walked and counted instead
func (c *ClientImpl) GetValidatorDelegatorsCount(ctx context.Context, valoperAddress string) (uint64, error) {
	path := fmt.Sprintf(validatorDelegationsPathFmt, url.PathEscape(valoperAddress))
	query := url.Values{paginationCountTotalParam: []string{"true"}}

	resp, err := get[core.ChainDelegationsResponse](ctx, c, "validator_delegations", path, query)
	if err != nil {
		return 0, err
	}

	if total, err := strconv.ParseUint(resp.Pagination.Total, 10, 64); err == nil && total > 0 {
		return total, nil
	}

	count := uint64(len(resp.DelegationResponses))
	if resp.Pagination.NextKey == "" {
		return count, nil
	}

	rest, err := getPagesFrom(ctx, c, "validator_delegations", path, nil, resp.Pagination.NextKey,
		func(resp core.ChainDelegationsResponse) ([]core.ChainDelegationResponse, string) {
			return resp.DelegationResponses, resp.Pagination.NextKey
		})
	if err != nil {
		return 0, err
	}

	return count + uint64(len(rest)), nil
}

// errorPayloadResponse is satisfied by responses that embed core.ChainErrorPayload
type errorPayloadResponse interface {
	HasErrorCode() bool
	ErrorCode() int
	ErrorMessage() string
}

func get[TResponse any](
	ctx context.Context, c *ClientImpl, operation string, path string, query url.Values,
) (TResponse, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	c.logger.Debug("Sending upstream request", "operation", operation, "url", requestURL)

	startTime := time.Now()

	resp, err := common.HTTPGet[TResponse](ctx, c.httpClient, requestURL)

	telemetry.UpdateUpstreamRequest(operation, startTime)

	if err == nil {
		// a gateway reporting an error with a 2xx status is handled the same way as a non-2xx one
		if payload, ok := any(resp).(errorPayloadResponse); ok && payload.HasErrorCode() {
			err = &common.UpstreamError{
				URL:        requestURL,
				StatusCode: http.StatusOK,
				HasCode:    true,
				Code:       payload.ErrorCode(),
				Message:    payload.ErrorMessage(),
			}
		}
	}

	if err != nil {
		telemetry.UpdateUpstreamRequestFailed(operation)

		c.logger.Debug("Upstream request failed", "operation", operation, "url", requestURL, "err", err)

		return resp, fmt.Errorf("%s request failed: %w", operation, err)
	}

	return resp, nil
}

func getAllPages[TResponse any, TItem any](
	ctx context.Context, c *ClientImpl, operation string, path string, query url.Values,
	extract func(TResponse) ([]TItem, string),
) ([]TItem, error) {
	return getPagesFrom(ctx, c, operation, path, query, "", extract)
}

func getPagesFrom[TResponse any, TItem any](
	ctx context.Context, c *ClientImpl, operation string, path string, query url.Values, pageKey string,
	extract func(TResponse) ([]TItem, string),
) ([]TItem, error) {
	var result []TItem

	for page := 0; page < maxPages; page++ {
		pageQuery := url.Values{}

		for key, values := range query {
			pageQuery[key] = values
		}

		if pageKey != "" {
			pageQuery.Set(paginationKeyParam, pageKey)
		}

		resp, err := get[TResponse](ctx, c, operation, path, pageQuery)
		if err != nil {
			return nil, err
		}

		items, nextKey := extract(resp)
		result = append(result, items...)

		if nextKey == "" {
			return result, nil
		}

		if nextKey == pageKey {
			return nil, fmt.Errorf("%s request failed: upstream returned the same page key twice", operation)
		}

		pageKey = nextKey
	}

	return nil, fmt.Errorf("%s request failed: more than %d pages", operation, maxPages)
}

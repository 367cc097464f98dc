package chain

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Ethernal-Tech/cosmos-chain-api/common"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

const testValoper = "cosmosvaloper1sjllsnramtg3ewxqwwrwjxfgc4n4ef9u2lcnj0"

func newTestClient(t *testing.T, handler http.HandlerFunc) *ClientImpl {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	// trailing slash must not end up doubled in request paths
	return NewClient(server.URL+"/", 5*time.Second, hclog.NewNullLogger())
}

func TestGetLatestBlockHeight(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, latestValidatorSetPath, r.URL.Path)

			_, _ = fmt.Fprint(w, `{"block_height":"19876543","validators":[],"pagination":{"next_key":null,"total":"0"}}`)
		})

		height, err := client.GetLatestBlockHeight(context.Background())
		require.NoError(t, err)
		require.Equal(t, uint64(19876543), height)
	})

	t.Run("invalid height", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, `{"block_height":"abc"}`)
		})

		_, err := client.GetLatestBlockHeight(context.Background())
		require.ErrorContains(t, err, "invalid block height")
	})

	t.Run("upstream failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.GetLatestBlockHeight(context.Background())
		require.ErrorContains(t, err, "block_height request failed")
	})
}

func TestGetBondedValidators(t *testing.T) {
	t.Run("follows pages", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, validatorsPath, r.URL.Path)
			require.Equal(t, bondStatusBonded, r.URL.Query().Get("status"))

			switch r.URL.Query().Get(paginationKeyParam) {
			case "":
				_, _ = fmt.Fprint(w, `{"validators":[{"operator_address":"a","tokens":"1"},{"operator_address":"b","tokens":"2"}],
					"pagination":{"next_key":"FPmzQ+ZnX5A=","total":"0"}}`)
			case "FPmzQ+ZnX5A=":
				_, _ = fmt.Fprint(w, `{"validators":[{"operator_address":"c","tokens":"3"}],"pagination":{"next_key":null}}`)
			default:
				w.WriteHeader(http.StatusBadRequest)
			}
		})

		validators, err := client.GetBondedValidators(context.Background())
		require.NoError(t, err)
		require.Len(t, validators, 3)
		require.Equal(t, "a", validators[0].OperatorAddress)
		require.Equal(t, "b", validators[1].OperatorAddress)
		require.Equal(t, "c", validators[2].OperatorAddress)
	})

	t.Run("decodes validator", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprintf(w, `{"validators":[{
				"operator_address":"%s",
				"jailed":false,
				"status":"BOND_STATUS_BONDED",
				"tokens":"1500000",
				"description":{"moniker":"Node","identity":"ID","website":"https://node.io","details":"Details"},
				"commission":{"commission_rates":{"rate":"0.050000000000000000","max_rate":"0.200000000000000000","max_change_rate":"0.010000000000000000"},"update_time":"2024-01-01T00:00:00Z"}
			}],"pagination":{"next_key":null}}`, testValoper)
		})

		validators, err := client.GetBondedValidators(context.Background())
		require.NoError(t, err)
		require.Len(t, validators, 1)

		validator := validators[0]
		require.Equal(t, testValoper, validator.OperatorAddress)
		require.Equal(t, "1500000", validator.Tokens)
		require.Equal(t, "Node", validator.Description.Moniker)
		require.Equal(t, "Details", validator.Description.Details)
		require.Equal(t, "0.200000000000000000", validator.Commission.CommissionRates.MaxRate)
		require.Equal(t, "2024-01-01T00:00:00Z", validator.Commission.UpdateTime)
	})

	t.Run("empty set", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, `{"validators":[],"pagination":{"next_key":null,"total":"0"}}`)
		})

		validators, err := client.GetBondedValidators(context.Background())
		require.NoError(t, err)
		require.Empty(t, validators)
	})

	t.Run("repeated page key", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, `{"validators":[],"pagination":{"next_key":"AA=="}}`)
		})

		_, err := client.GetBondedValidators(context.Background())
		require.ErrorContains(t, err, "same page key")
	})
}

func TestGetStakingParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, stakingParamsPath, r.URL.Path)

		_, _ = fmt.Fprint(w, `{"params":{"unbonding_time":"1814400s","max_validators":180,"max_entries":7,
			"historical_entries":10000,"bond_denom":"uatom","min_commission_rate":"0.050000000000000000"}}`)
	})

	params, err := client.GetStakingParams(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint32(180), params.MaxValidators)
	require.Equal(t, "uatom", params.BondDenom)
}

func TestAccountQueries(t *testing.T) {
	const address = "cosmos1sjllsnramtg3ewxqwwrwjxfgc4n4ef9u0tvx7u"

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case fmt.Sprintf(balancesPathFmt, address):
			_, _ = fmt.Fprint(w, `{"balances":[{"denom":"uatom","amount":"2500000"}],"pagination":{"next_key":null,"total":"1"}}`)
		case fmt.Sprintf(delegationsPathFmt, address):
			_, _ = fmt.Fprint(w, `{"delegation_responses":[{"delegation":{"delegator_address":"x","validator_address":"y","shares":"1000000.0"},
				"balance":{"denom":"uatom","amount":"1000000"}}],"pagination":{"next_key":null,"total":"1"}}`)
		case fmt.Sprintf(rewardsPathFmt, address):
			_, _ = fmt.Fprint(w, `{"rewards":[],"total":[{"denom":"uatom","amount":"12.5"}]}`)
		case fmt.Sprintf(balancesPathFmt, "invalid"):
			w.WriteHeader(http.StatusBadRequest)

			_, _ = fmt.Fprint(w, `{"code":3,"message":"invalid address: decoding bech32 failed","details":[]}`)
		case fmt.Sprintf(rewardsPathFmt, "invalid"):
			_, _ = fmt.Fprint(w, `{"code":3,"message":"invalid address"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	balances, err := client.GetBalances(context.Background(), address)
	require.NoError(t, err)
	require.Equal(t, "2500000", balances[0].Amount)

	delegations, err := client.GetDelegations(context.Background(), address)
	require.NoError(t, err)
	require.Len(t, delegations, 1)
	require.Equal(t, "1000000", delegations[0].Balance.Amount)

	rewards, err := client.GetRewards(context.Background(), address)
	require.NoError(t, err)
	require.Equal(t, "12.5", rewards.Total[0].Amount)

	_, err = client.GetBalances(context.Background(), "invalid")
	require.Error(t, err)
	require.True(t, common.IsUpstreamCodeError(err))

	// error code reported with a 2xx status
	_, err = client.GetRewards(context.Background(), "invalid")
	require.Error(t, err)
	require.True(t, common.IsUpstreamCodeError(err))
	require.ErrorContains(t, err, "invalid address")

	// 404 without error payload is a plain failure
	_, err = client.GetDelegations(context.Background(), "unknown")
	require.Error(t, err)
	require.False(t, common.IsUpstreamCodeError(err))
}

func TestGetValidatorDelegatorsCount(t *testing.T) {
	path := fmt.Sprintf(validatorDelegationsPathFmt, testValoper)

	t.Run("total reported", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, path, r.URL.Path)
			require.Equal(t, "true", r.URL.Query().Get(paginationCountTotalParam))

			_, _ = fmt.Fprint(w, `{"delegation_responses":[{},{}],"pagination":{"next_key":"AQ==","total":"4521"}}`)
		})

		count, err := client.GetValidatorDelegatorsCount(context.Background(), testValoper)
		require.NoError(t, err)
		require.Equal(t, uint64(4521), count)
	})

	t.Run("total missing, pages counted", func(t *testing.T) {
		var calls atomic.Int32

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)

			if r.URL.Query().Get(paginationKeyParam) == "" {
				_, _ = fmt.Fprint(w, `{"delegation_responses":[{},{},{}],"pagination":{"next_key":"AQ=="}}`)
			} else {
				_, _ = fmt.Fprint(w, `{"delegation_responses":[{},{}],"pagination":{"next_key":null}}`)
			}
		})

		count, err := client.GetValidatorDelegatorsCount(context.Background(), testValoper)
		require.NoError(t, err)
		require.Equal(t, uint64(5), count)
		require.Equal(t, int32(2), calls.Load())
	})

	t.Run("single page", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, `{"delegation_responses":[{}],"pagination":{"next_key":null,"total":"0"}}`)
		})

		count, err := client.GetValidatorDelegatorsCount(context.Background(), testValoper)
		require.NoError(t, err)
		require.Equal(t, uint64(1), count)
	})
}

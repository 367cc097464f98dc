package utils

import (
	"testing"

	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"
	"github.com/stretchr/testify/require"
)

func TestNewAddressSummary(t *testing.T) {
	t.Run("full account", func(t *testing.T) {
		summary, err := NewAddressSummary(
			[]core.ChainCoin{{Denom: "uatom", Amount: "2500000"}, {Denom: "ibc/27394FB", Amount: "1"}},
			[]core.ChainDelegationResponse{
				{Balance: core.ChainCoin{Denom: "uatom", Amount: "1000000"}},
				{Balance: core.ChainCoin{Denom: "uatom", Amount: "500000"}},
			},
			&core.ChainRewardsResponse{
				Total: []core.ChainDecCoin{{Denom: "uatom", Amount: "123456.789000000000000000"}},
			},
			6,
		)
		require.NoError(t, err)
		require.Equal(t, core.AddressSummary{
			Balance:        2.5,
			TotalDelegated: 1.5,
			DelegatedTo:    2,
			Rewards:        0.123456,
		}, summary)
	})

	t.Run("empty account", func(t *testing.T) {
		summary, err := NewAddressSummary(nil, nil, &core.ChainRewardsResponse{}, 6)
		require.NoError(t, err)
		require.Equal(t, core.AddressSummary{}, summary)
	})

	t.Run("invalid balance", func(t *testing.T) {
		_, err := NewAddressSummary([]core.ChainCoin{{Amount: "x"}}, nil, nil, 6)
		require.ErrorContains(t, err, "balance")
	})

	t.Run("invalid delegation", func(t *testing.T) {
		_, err := NewAddressSummary(nil, []core.ChainDelegationResponse{{Balance: core.ChainCoin{Amount: ""}}}, nil, 6)
		require.ErrorContains(t, err, "delegation to")
	})

	t.Run("invalid rewards", func(t *testing.T) {
		_, err := NewAddressSummary(nil, nil, &core.ChainRewardsResponse{Total: []core.ChainDecCoin{{Amount: "y"}}}, 6)
		require.ErrorContains(t, err, "rewards")
	})
}

func TestNewAccountNotFoundSummary(t *testing.T) {
	require.Equal(t, core.AddressSummary{Balance: -1}, core.NewAccountNotFoundSummary())
}

package utils

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"
)

// NewAddressSummary builds the account overview from the bank, staking and distribution responses.
// Balance is the first coin the bank module reports, the first reward coin is the reward amount
func NewAddressSummary(
	balances []core.ChainCoin,
	delegations []core.ChainDelegationResponse,
	rewards *core.ChainRewardsResponse,
	coinDenomination uint32,
) (core.AddressSummary, error) {
	var (
		summary = core.AddressSummary{DelegatedTo: len(delegations)}
		err     error
	)

	if len(balances) > 0 {
		summary.Balance, err = AmountToFloat(balances[0].Amount, coinDenomination, false)
		if err != nil {
			return core.AddressSummary{}, fmt.Errorf("balance: %w", err)
		}
	}

	totalDelegated := sdkmath.LegacyZeroDec()

	for _, delegation := range delegations {
		amount, err := sdkmath.LegacyNewDecFromStr(delegation.Balance.Amount)
		if err != nil {
			return core.AddressSummary{}, fmt.Errorf("delegation to %s: invalid amount %q: %w",
				delegation.Delegation.ValidatorAddress, delegation.Balance.Amount, err)
		}

		totalDelegated = totalDelegated.Add(amount)
	}

	summary.TotalDelegated, err = AmountToFloat(totalDelegated.String(), coinDenomination, false)
	if err != nil {
		return core.AddressSummary{}, fmt.Errorf("total delegated: %w", err)
	}

	if rewards != nil && len(rewards.Total) > 0 {
		summary.Rewards, err = AmountToFloat(rewards.Total[0].Amount, coinDenomination, true)
		if err != nil {
			return core.AddressSummary{}, fmt.Errorf("rewards: %w", err)
		}
	}

	return summary, nil
}

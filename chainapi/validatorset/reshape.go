package validatorset

import (
	"fmt"
	"sort"

	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/utils"
)

// ReshapeValidators converts raw bonded validators into the api view, sorted by tokens descending.
// Validators with equal tokens keep their upstream order
func ReshapeValidators(
	rawValidators []core.ChainValidator, coinDenomination uint32, hrpPrefix string,
) ([]core.Validator, error) {
	validators := make([]core.Validator, len(rawValidators))

	for i, raw := range rawValidators {
		validator, err := reshapeValidator(raw, coinDenomination, hrpPrefix)
		if err != nil {
			return nil, fmt.Errorf("validator %s: %w", raw.OperatorAddress, err)
		}

		validators[i] = validator
	}

	sort.SliceStable(validators, func(i, j int) bool {
		return validators[i].Tokens > validators[j].Tokens
	})

	return validators, nil
}

func reshapeValidator(raw core.ChainValidator, coinDenomination uint32, hrpPrefix string) (core.Validator, error) {
	address, err := utils.OwnerAddressFromValoper(raw.OperatorAddress, hrpPrefix)
	if err != nil {
		return core.Validator{}, err
	}

	tokens, err := utils.ConvertTokens(raw.Tokens, coinDenomination)
	if err != nil {
		return core.Validator{}, err
	}

	commission, err := reshapeCommission(raw.Commission)
	if err != nil {
		return core.Validator{}, err
	}

	return core.Validator{
		Moniker:        raw.Description.Moniker,
		Description:    raw.Description.Details,
		Website:        raw.Description.Website,
		Identity:       raw.Description.Identity,
		ValoperAddress: raw.OperatorAddress,
		Address:        address,
		Tokens:         tokens,
		Commission:     commission,
	}, nil
}

func reshapeCommission(raw core.ChainCommission) (commission core.Commission, err error) {
	commission.Rate, err = utils.ConvertCommissionRate(raw.CommissionRates.Rate)
	if err != nil {
		return commission, err
	}

	commission.MaxRate, err = utils.ConvertCommissionRate(raw.CommissionRates.MaxRate)
	if err != nil {
		return commission, err
	}

	commission.MaxChangeRate, err = utils.ConvertCommissionRate(raw.CommissionRates.MaxChangeRate)
	if err != nil {
		return commission, err
	}

	commission.LastUpdate, err = utils.FormatCommissionTime(raw.UpdateTime)

	return commission, err
}

package response

import "github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"

type CommissionDataResponse struct {
	// Commission rate in percent
	Rate int64 `json:"rate"`
	// Maximum commission rate in percent
	MaxRate int64 `json:"max_rate"`
	// Maximum daily commission change in percent
	MaxChangeRate int64 `json:"max_change_rate"`
	// Last commission change, DD.MM.YYYY HH:MM:SS at UTC+3
	LastUpdate string `json:"last_update"`
} // @name CommissionDataResponse

type ValidatorResponse struct {
	Moniker        string                 `json:"moniker"`
	Description    string                 `json:"description"`
	Website        string                 `json:"website"`
	Identity       string                 `json:"identity"`
	ValoperAddress string                 `json:"valoper_address"`
	Address        string                 `json:"address"`
	Tokens         int64                  `json:"tokens"`
	CommissionData CommissionDataResponse `json:"commission_data"`
} // @name ValidatorResponse

type ValidatorsInfoResponse struct {
	// Number of bonded validators
	BondedValidators int `json:"bonded_validators"`
	// Maximum number of validators in the active set
	MaxValidators uint32 `json:"max_validators"`
	// Bonded validators sorted by stake, descending
	Validators []*ValidatorResponse `json:"validators"`
} // @name ValidatorsInfoResponse

func NewValidatorResponse(validator core.Validator) *ValidatorResponse {
	return &ValidatorResponse{
		Moniker:        validator.Moniker,
		Description:    validator.Description,
		Website:        validator.Website,
		Identity:       validator.Identity,
		ValoperAddress: validator.ValoperAddress,
		Address:        validator.Address,
		Tokens:         validator.Tokens,
		CommissionData: CommissionDataResponse{
			Rate:          validator.Commission.Rate,
			MaxRate:       validator.Commission.MaxRate,
			MaxChangeRate: validator.Commission.MaxChangeRate,
			LastUpdate:    validator.Commission.LastUpdate,
		},
	}
}

func NewValidatorsInfoResponse(validatorSet *core.ValidatorSet) *ValidatorsInfoResponse {
	validators := make([]*ValidatorResponse, len(validatorSet.Validators))
	for i, validator := range validatorSet.Validators {
		validators[i] = NewValidatorResponse(validator)
	}

	return &ValidatorsInfoResponse{
		BondedValidators: validatorSet.BondedValidators,
		MaxValidators:    validatorSet.MaxValidators,
		Validators:       validators,
	}
}

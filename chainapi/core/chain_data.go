package core

// Raw models of the cosmos-sdk REST (grpc-gateway) responses used by the api

// ChainErrorPayload is present in gateway bodies that report a failure with a 2xx status
type ChainErrorPayload struct {
	Code    *int   `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func (p ChainErrorPayload) HasErrorCode() bool {
	return p.Code != nil && *p.Code != 0
}

func (p ChainErrorPayload) ErrorCode() int {
	if p.Code == nil {
		return 0
	}

	return *p.Code
}

func (p ChainErrorPayload) ErrorMessage() string {
	return p.Message
}

type ChainPageResponse struct {
	// base64 encoded key of the next page, empty on the last one
	NextKey string `json:"next_key"`
	// filled only when pagination.count_total was requested
	Total string `json:"total"`
}

type ChainCoin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type ChainDecCoin struct {
	Denom string `json:"denom"`
	// decimal string, e.g. "1234.567000000000000000"
	Amount string `json:"amount"`
}

type ChainValidatorDescription struct {
	Moniker         string `json:"moniker"`
	Identity        string `json:"identity"`
	Website         string `json:"website"`
	SecurityContact string `json:"security_contact"`
	Details         string `json:"details"`
}

type ChainCommissionRates struct {
	Rate          string `json:"rate"`
	MaxRate       string `json:"max_rate"`
	MaxChangeRate string `json:"max_change_rate"`
}

type ChainCommission struct {
	CommissionRates ChainCommissionRates `json:"commission_rates"`
	UpdateTime      string               `json:"update_time"`
}

type ChainValidator struct {
	OperatorAddress   string                    `json:"operator_address"`
	Jailed            bool                      `json:"jailed"`
	Status            string                    `json:"status"`
	Tokens            string                    `json:"tokens"`
	DelegatorShares   string                    `json:"delegator_shares"`
	Description       ChainValidatorDescription `json:"description"`
	Commission        ChainCommission           `json:"commission"`
	MinSelfDelegation string                    `json:"min_self_delegation"`
}

type ChainValidatorsResponse struct {
	Validators []ChainValidator  `json:"validators"`
	Pagination ChainPageResponse `json:"pagination"`
}

type ChainStakingParams struct {
	UnbondingTime     string `json:"unbonding_time"`
	MaxValidators     uint32 `json:"max_validators"`
	MaxEntries        uint32 `json:"max_entries"`
	HistoricalEntries uint32 `json:"historical_entries"`
	BondDenom         string `json:"bond_denom"`
	MinCommissionRate string `json:"min_commission_rate"`
}

type ChainStakingParamsResponse struct {
	Params ChainStakingParams `json:"params"`
}

type ChainLatestValidatorSetResponse struct {
	BlockHeight string            `json:"block_height"`
	Pagination  ChainPageResponse `json:"pagination"`
}

type ChainBalancesResponse struct {
	ChainErrorPayload
	Balances   []ChainCoin       `json:"balances"`
	Pagination ChainPageResponse `json:"pagination"`
}

type ChainDelegation struct {
	DelegatorAddress string `json:"delegator_address"`
	ValidatorAddress string `json:"validator_address"`
	Shares           string `json:"shares"`
}

type ChainDelegationResponse struct {
	Delegation ChainDelegation `json:"delegation"`
	Balance    ChainCoin       `json:"balance"`
}

type ChainDelegationsResponse struct {
	ChainErrorPayload
	DelegationResponses []ChainDelegationResponse `json:"delegation_responses"`
	Pagination          ChainPageResponse         `json:"pagination"`
}

type ChainValidatorReward struct {
	ValidatorAddress string         `json:"validator_address"`
	Reward           []ChainDecCoin `json:"reward"`
}

type ChainRewardsResponse struct {
	ChainErrorPayload
	Rewards []ChainValidatorReward `json:"rewards"`
	Total   []ChainDecCoin         `json:"total"`
}

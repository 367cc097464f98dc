package core

type Commission struct {
	// rates are percentages scaled by 100 and truncated: "0.05" -> 5
	Rate          int64
	MaxRate       int64
	MaxChangeRate int64
	// DD.MM.YYYY HH:MM:SS at UTC+3
	LastUpdate string
}

type Validator struct {
	Moniker        string
	Description    string
	Website        string
	Identity       string
	ValoperAddress string
	// owner account address derived from ValoperAddress with the configured prefix
	Address string
	// stake already divided by 10^CoinDenomination
	Tokens     int64
	Commission Commission
}

// ValidatorSet is one refresh cycle's view of the bonded validators.
// Validators are sorted by Tokens descending, BondedValidators == len(Validators)
type ValidatorSet struct {
	BondedValidators int
	MaxValidators    uint32
	Validators       []Validator
}

// AddressSummary is the balance/delegation/reward overview of an account.
// An account the chain does not know is reported with Balance == AccountNotFoundBalance
// and zeros everywhere else
type AddressSummary struct {
	Balance        float64
	TotalDelegated float64
	DelegatedTo    int
	Rewards        float64
}

const AccountNotFoundBalance = -1

func NewAccountNotFoundSummary() AddressSummary {
	return AddressSummary{Balance: AccountNotFoundBalance}
}

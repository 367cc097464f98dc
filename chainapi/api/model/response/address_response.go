package response

import "github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"

// AddressResponse reports balance -1 and zeros elsewhere for an address the chain rejects
type AddressResponse struct {
	Balance        float64 `json:"balance"`
	TotalDelegated float64 `json:"total_delegated"`
	DelegatedTo    int     `json:"delegated_to"`
	Rewards        float64 `json:"rewards"`
} // @name AddressResponse

func NewAddressResponse(summary core.AddressSummary) *AddressResponse {
	return &AddressResponse{
		Balance:        summary.Balance,
		TotalDelegated: summary.TotalDelegated,
		DelegatedTo:    summary.DelegatedTo,
		Rewards:        summary.Rewards,
	}
}

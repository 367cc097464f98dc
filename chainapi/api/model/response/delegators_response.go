package response

type DelegatorsResponse struct {
	// Number of delegations to the validator
	Delegators uint64 `json:"delegators"`
} // @name DelegatorsResponse

func NewDelegatorsResponse(delegators uint64) *DelegatorsResponse {
	return &DelegatorsResponse{
		Delegators: delegators,
	}
}

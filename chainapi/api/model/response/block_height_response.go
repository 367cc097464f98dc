package response

type BlockHeightResponse struct {
	// Latest block height
	Height uint64 `json:"height"`
} // @name BlockHeightResponse

func NewBlockHeightResponse(height uint64) *BlockHeightResponse {
	return &BlockHeightResponse{
		Height: height,
	}
}

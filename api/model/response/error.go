package response

type ErrorResponse struct {
	Err string `json:"err"`
} // @name ErrorResponse

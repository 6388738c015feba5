package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// deletedResponse acknowledges a successful delete.
type deletedResponse struct {
	Deleted bool `json:"deleted"`
}

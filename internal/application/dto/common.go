package dto

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse returns the id of a newly created ledger record.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

package errors

// ErrorResponse is the body the error middleware writes for a failed storefront request
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail holds the shopper-facing hint and the sentinel code clients branch on.
// Details only ever carries values marked reportable, such as the offending product id.
type ErrorDetail struct {
	Display string         `json:"message"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

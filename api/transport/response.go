package transport

import "encoding/json"

// Envelope is the error payload wrapper. Successful responses use the wire
// shapes the CRM front-end consumes directly (bare records, ListResult,
// DeleteResult); only failures are enveloped.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewError returns an error envelope with optional metadata.
func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// DeleteResult is the body returned for successful deletes.
type DeleteResult struct {
	Success bool `json:"success"`
}

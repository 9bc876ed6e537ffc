// Package dto defines the wire schema of Twelve Data API responses.
package dto

// QuoteResponse is the subset of the /quote endpoint response the service
// consumes. Status and Message are only populated on provider-side errors.
type QuoteResponse struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

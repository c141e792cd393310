// Package dto defines data transfer objects for the catalog feature's HTTP
// transport layer.
package dto

// SuggestionsResponse is the body for book-name autocomplete responses.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

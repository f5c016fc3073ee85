package models

// SearchRecord is the audit entry persisted for every successful search.
// Write-only: no endpoint reads it back.
type SearchRecord struct {
	Query     string   `json:"query"`
	Filters   Filters  `json:"filters"`
	Results   []Recipe `json:"results"`
	Timestamp string   `json:"timestamp"`
}

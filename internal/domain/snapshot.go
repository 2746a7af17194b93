package domain

import "time"

// Country is one entry of the upstream statistics provider's country list.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Snapshot is a saved visualizer session: the form inputs at the moment the
// user chose to persist them. The activity list is stored JSON-encoded.
type Snapshot struct {
	ID          int64      `json:"id"`
	BirthDate   time.Time  `json:"birth_date"`
	CountryCode string     `json:"country_code"`
	Activities  []Activity `json:"activities"`
	CreatedAt   time.Time  `json:"created_at"`
}

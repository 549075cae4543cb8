package domain

// OrderSeries is a numbering scheme used to mint human-readable order numbers.
// The allocator owns LastNumber; it only ever advances.
type OrderSeries struct {
	SeriesID    string `json:"id"` // Primary Key (UUID)
	Prefix      string `json:"prefix"`
	Suffix      string `json:"suffix,omitempty"`
	Description string `json:"description,omitempty"`
	IsDefault   bool   `json:"isDefault"`
	StartNumber int64  `json:"startNumber"` // >= 1
	LastNumber  int64  `json:"lastNumber"`  // starts at 0, monotonically non-decreasing
	AuditFields
}

// SenderIDSeries is the numbering scheme whose prefix seeds generated
// transaction identifiers. Per-bucket sequencing lives in dedicated counter
// rows, not in LastNumber; the field is kept for the series listing views.
type SenderIDSeries struct {
	SeriesID    string `json:"id"` // Primary Key (UUID)
	Prefix      string `json:"prefix"`
	Description string `json:"description,omitempty"`
	IsDefault   bool   `json:"isDefault"`
	LastNumber  int64  `json:"lastNumber"`
	AuditFields
}

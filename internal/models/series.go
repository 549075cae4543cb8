package models

// OrderSeries is the order_series table row.
type OrderSeries struct {
	SeriesID    string `db:"series_id"`
	Prefix      string `db:"prefix"`
	Suffix      string `db:"suffix"`
	Description string `db:"description"`
	IsDefault   bool   `db:"is_default"`
	StartNumber int64  `db:"start_number"`
	LastNumber  int64  `db:"last_number"`
	AuditFields
}

// SenderIDSeries is the sender_id_series table row.
type SenderIDSeries struct {
	SeriesID    string `db:"series_id"`
	Prefix      string `db:"prefix"`
	Description string `db:"description"`
	IsDefault   bool   `db:"is_default"`
	LastNumber  int64  `db:"last_number"`
	AuditFields
}

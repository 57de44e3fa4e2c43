package core

import "time"

// SalesRecord is a single row of the transactional dataset. The store owns
// population and integrity; this service only reads.
type SalesRecord struct {
	Date     time.Time
	Year     int
	Month    int // 1-12
	Category string
	Amount   float64
}

// CategoryTotal is one category's summed amount within a period,
// as returned by the store sorted by amount descending.
type CategoryTotal struct {
	Category string
	Amount   float64
}

package models

import "time"

// DefaultTransactionLimit is the page size used when callers have no preference.
const DefaultTransactionLimit = 10

// Transaction is a single account movement.
type Transaction struct {
	ID      string
	Amount  Amount
	Created time.Time
}

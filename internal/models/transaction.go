package models

import "time"

// TransactionType is the kind of revenue a transaction represents.
type TransactionType string

// Supported transaction types
const (
	TransactionTypeSubscription    TransactionType = "subscription"
	TransactionTypeFeaturedListing TransactionType = "featured_listing"
)

// Valid reports whether t is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeSubscription || t == TransactionTypeFeaturedListing
}

// Transaction represents a paid transaction, including amount, user, date, and type.
type Transaction struct {
	TransactionID   int64           `json:"transaction_id" db:"transaction_id"`     // TransactionID is a unique identifier for the transaction.
	UserID          int64           `json:"user_id" db:"user_id"`                   // UserID is the identifier of the paying user.
	Amount          float64         `json:"amount" db:"amount"`                     // Amount is the monetary value of the transaction, non-negative.
	TransactionDate time.Time       `json:"transaction_date" db:"transaction_date"` // TransactionDate is the calendar date of the payment.
	TransactionType TransactionType `json:"transaction_type" db:"transaction_type"` // TransactionType is subscription or featured_listing.
	UserMissing     bool            `json:"-" db:"user_missing"`
}

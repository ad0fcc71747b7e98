package models

import "time"

// Entity names a source collection in the store.
type Entity string

// Supported entity collections
const (
	EntityUsers        Entity = "users"
	EntityListings     Entity = "listings"
	EntityLeads        Entity = "leads"
	EntityTransactions Entity = "transactions"
)

// Filter restricts a scan by date range and categorical equality.
// Zero values mean "no restriction". The date range is [From, To).
type Filter struct {
	From            *time.Time
	To              *time.Time
	Emirate         string
	Status          ListingStatus
	UserType        UserType
	Category        string
	TransactionType TransactionType
}

// Date truncates t to its calendar day, dropping time of day and location.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Month truncates t to the first day of its calendar month.
func Month(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

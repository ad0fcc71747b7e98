package models

import "time"

// ListingStatus is the lifecycle state of a listing.
// Transitions are active -> sold and active -> expired.
type ListingStatus string

// Supported listing statuses
const (
	ListingStatusActive  ListingStatus = "active"
	ListingStatusSold    ListingStatus = "sold"
	ListingStatusExpired ListingStatus = "expired"
)

// Valid reports whether s is one of the supported statuses.
func (s ListingStatus) Valid() bool {
	switch s {
	case ListingStatusActive, ListingStatusSold, ListingStatusExpired:
		return true
	}
	return false
}

// Supported property categories
const (
	CategoryApartments = "Apartments"
	CategoryVillas     = "Villas"
	CategoryTownhouses = "Townhouses"
	CategoryPenthouses = "Penthouses"
	CategoryCommercial = "Commercial"
	CategoryLand       = "Land"
)

// Listing represents a property listing row joined with its owner.
type Listing struct {
	ListingID   int64         `json:"listing_id" db:"listing_id"`     // Primary key
	UserID      int64         `json:"user_id" db:"user_id"`           // Owner, references users
	Category    string        `json:"category" db:"category"`         // Property category
	Emirate     string        `json:"emirate" db:"emirate"`           // Region of the property
	Price       float64       `json:"price" db:"price"`               // Asking price, non-negative
	CreatedDate time.Time     `json:"created_date" db:"created_date"` // Date the listing was published
	Status      ListingStatus `json:"status" db:"status"`             // active, sold or expired
	UserMissing bool          `json:"-" db:"user_missing"`            // Owner not found in users
}

// ListingSale is the first "sold" status change recorded for a listing.
type ListingSale struct {
	ListingID int64     `json:"listing_id" db:"listing_id"`
	SoldDate  time.Time `json:"sold_date" db:"sold_date"`
}

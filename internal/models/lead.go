package models

import "time"

// Lead is an expression of interest by a user in a listing.
type Lead struct {
	LeadID         int64     `json:"lead_id" db:"lead_id"`
	ListingID      int64     `json:"listing_id" db:"listing_id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	LeadDate       time.Time `json:"lead_date" db:"lead_date"`
	ListingEmirate string    `json:"listing_emirate" db:"listing_emirate"` // Emirate of the referenced listing, empty when missing
	ListingMissing bool      `json:"-" db:"listing_missing"`
	UserMissing    bool      `json:"-" db:"user_missing"`
}

package models

import "time"

// UserType is the marketplace role of a user.
type UserType string

// Supported user types
const (
	UserTypeBuyer  UserType = "buyer"
	UserTypeSeller UserType = "seller"
	UserTypeAgent  UserType = "agent"
)

// Valid reports whether t is one of the supported user types.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeBuyer, UserTypeSeller, UserTypeAgent:
		return true
	}
	return false
}

// Supported emirates
const (
	EmirateDubai        = "Dubai"
	EmirateAbuDhabi     = "Abu Dhabi"
	EmirateSharjah      = "Sharjah"
	EmirateAjman        = "Ajman"
	EmirateRasAlKhaimah = "Ras Al Khaimah"
	EmirateFujairah     = "Fujairah"
	EmirateUmmAlQuwain  = "Umm Al Quwain"
)

// User represents a user record in the database
type User struct {
	UserID     int64     `json:"user_id" db:"user_id"`         // Primary key
	SignupDate time.Time `json:"signup_date" db:"signup_date"` // Registration date
	Emirate    string    `json:"emirate" db:"emirate"`         // Region of the user
	UserType   UserType  `json:"user_type" db:"user_type"`     // buyer, seller or agent
}

package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultCurrency is the display currency for new users.
const DefaultCurrency = "₹"

// User represents a registered user. A user owns all of their
// categories and transactions, nothing is shared between users.
type User struct {
	DefaultModel
	Name          string          `json:"name" example:"Ellen Ripley"`
	Email         string          `json:"email" gorm:"uniqueIndex" example:"ellen@example.com"` // Stored lower-cased
	Password      string          `json:"-"`                                                    // bcrypt hash, never serialized
	Currency      string          `json:"currency" example:"₹" default:"₹"`                     // Display currency symbol
	MonthlyBudget decimal.Decimal `json:"monthlyBudget" gorm:"type:DECIMAL(20,8)" example:"1500"`
}

// BeforeSave normalizes the email address and defaults the currency.
//
// Emails are matched case-insensitively, storing them lower-cased
// makes the unique index do that for us.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)

	if u.Currency == "" {
		u.Currency = DefaultCurrency
	}

	return nil
}

// UserByEmail returns the user with the given email address.
// The lookup is case-insensitive.
func UserByEmail(db *gorm.DB, email string) (User, error) {
	var user User
	err := db.Where(&User{Email: strings.ToLower(strings.TrimSpace(email))}).First(&user).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}

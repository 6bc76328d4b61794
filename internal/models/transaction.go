package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/types"
)

// TransactionType is the kind of a transaction or category.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// TransactionTypes lists all valid transaction types.
var TransactionTypes = []TransactionType{TypeIncome, TypeExpense}

// Transaction represents a single income or expense entry in a user's
// ledger.
type Transaction struct {
	DefaultModel
	UserID   uuid.UUID       `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	User     User            `json:"-"`
	Title    string          `json:"title" example:"Coffee"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03"`
	Type     TransactionType `json:"type" example:"expense"`
	Category string          `json:"category" example:"Food"` // Category name, matched as free text
	Date     time.Time       `json:"date" example:"2022-04-02T19:28:44.491514Z"`
	Notes    string          `json:"notes,omitempty" example:"Double espresso"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - defaults the Date to the current instant
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Title = strings.TrimSpace(t.Title)
	t.Category = strings.TrimSpace(t.Category)
	t.Notes = strings.TrimSpace(t.Notes)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return
}

// TransactionsForUser returns the user's transactions ordered by date
// descending. With a month, only transactions within that month are
// returned, both boundary instants included.
func TransactionsForUser(db *gorm.DB, userID uuid.UUID, month *types.Month) ([]Transaction, error) {
	q := db.
		Where(&Transaction{UserID: userID}).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC")

	if month != nil {
		start, end := month.Bounds()
		q = q.Where("transactions.date >= ?", start).Where("transactions.date < ?", end)
	}

	transactions := make([]Transaction, 0)
	err := q.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// TransactionForUser returns the transaction with the given ID if it is
// owned by the user. A transaction owned by somebody else returns the
// same error as one that does not exist.
func TransactionForUser(db *gorm.DB, userID, id uuid.UUID) (Transaction, error) {
	var transaction Transaction
	err := db.
		Where(&Transaction{UserID: userID}).
		First(&transaction, "transactions.id = ?", id).Error
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

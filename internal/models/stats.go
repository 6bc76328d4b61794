package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/types"
)

// RecentTransactionCount is the number of transactions included in the
// dashboard's recent list.
const RecentTransactionCount = 5

// DashboardStats are the derived statistics for one user and one month.
// They are recomputed from the ledger on every request, never persisted
// and never cached.
type DashboardStats struct {
	TotalIncome        decimal.Decimal            `json:"totalIncome" example:"2317.34"`   // Sum of all income amounts in the month
	TotalExpense       decimal.Decimal            `json:"totalExpense" example:"1433.37"`  // Sum of all expense amounts in the month
	Balance            decimal.Decimal            `json:"balance" example:"883.97"`        // totalIncome - totalExpense
	ByCategory         map[string]decimal.Decimal `json:"byCategory"`                      // Expense sum per category name, income is excluded
	RecentTransactions []Transaction              `json:"recentTransactions"`              // The most recent transactions of the month, date descending
	Budget             decimal.Decimal            `json:"budget" example:"1500"`           // The user's monthly budget
	BudgetRemaining    decimal.Decimal            `json:"budgetRemaining" example:"66.63"` // budget - totalExpense, may be negative
}

// ComputeDashboard computes the dashboard statistics for the month that
// asOf falls into. For a fixed ledger state and a fixed asOf the result
// is identical on every call.
func ComputeDashboard(db *gorm.DB, userID uuid.UUID, asOf time.Time) (DashboardStats, error) {
	start, end := types.MonthOf(asOf).Bounds()

	totalIncome, err := monthlySum(db, userID, TypeIncome, start, end)
	if err != nil {
		return DashboardStats{}, err
	}

	totalExpense, err := monthlySum(db, userID, TypeExpense, start, end)
	if err != nil {
		return DashboardStats{}, err
	}

	byCategory, err := expensesByCategory(db, userID, start, end)
	if err != nil {
		return DashboardStats{}, err
	}

	recent := make([]Transaction, 0, RecentTransactionCount)
	err = db.
		Where(&Transaction{UserID: userID}).
		Where("transactions.date >= ?", start).Where("transactions.date < ?", end).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Limit(RecentTransactionCount).
		Find(&recent).Error
	if err != nil {
		return DashboardStats{}, err
	}

	var user User
	err = db.First(&user, "id = ?", userID).Error
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		TotalIncome:        totalIncome,
		TotalExpense:       totalExpense,
		Balance:            totalIncome.Sub(totalExpense),
		ByCategory:         byCategory,
		RecentTransactions: recent,
		Budget:             user.MonthlyBudget,
		BudgetRemaining:    user.MonthlyBudget.Sub(totalExpense),
	}, nil
}

// monthlySum returns the sum of all transaction amounts of one type for
// the user within [start, end).
func monthlySum(db *gorm.DB, userID uuid.UUID, t TransactionType, start, end time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Table("transactions").
		Select("SUM(amount)").
		Where(&Transaction{UserID: userID, Type: t}).
		Where("transactions.deleted_at IS NULL").
		Where("transactions.date >= ?", start).Where("transactions.date < ?", end).
		Find(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is nil
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// expensesByCategory returns the expense sum per category name for the
// user within [start, end). Income transactions never enter the map.
func expensesByCategory(db *gorm.DB, userID uuid.UUID, start, end time.Time) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Category string
		Total    decimal.Decimal
	}

	err := db.
		Table("transactions").
		Select("category, SUM(amount) AS total").
		Where(&Transaction{UserID: userID, Type: TypeExpense}).
		Where("transactions.deleted_at IS NULL").
		Where("transactions.date >= ?", start).Where("transactions.date < ?", end).
		Group("category").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		byCategory[row.Category] = row.Total
	}

	return byCategory, nil
}

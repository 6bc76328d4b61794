package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestComputeDashboard() {
	user := suite.createTestUser(models.User{
		Name:          "Ellen Ripley",
		MonthlyBudget: decimal.NewFromFloat(500),
	})

	create := func(amount float64, t models.TransactionType, category string, date time.Time) {
		_ = suite.createTestTransaction(models.Transaction{
			UserID: user.ID, Title: "Entry", Amount: decimal.NewFromFloat(amount),
			Type: t, Category: category, Date: date,
		})
	}

	march := func(day int) time.Time { return time.Date(2022, 3, day, 12, 0, 0, 0, time.UTC) }

	create(2000, models.TypeIncome, "Salary", march(1))
	create(100, models.TypeIncome, "Gift", march(5))
	create(50, models.TypeExpense, "Food", march(10))
	create(30, models.TypeExpense, "Food", march(12))
	create(20, models.TypeExpense, "Transport", march(15))

	// Outside of March, must not be counted
	create(999, models.TypeExpense, "Food", time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC))

	stats, err := models.ComputeDashboard(models.DB, user.ID, march(20))
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), stats.TotalIncome.Equal(decimal.NewFromFloat(2100)), "Total income is %s", stats.TotalIncome)
	assert.True(suite.T(), stats.TotalExpense.Equal(decimal.NewFromFloat(100)), "Total expense is %s", stats.TotalExpense)
	assert.True(suite.T(), stats.Balance.Equal(decimal.NewFromFloat(2000)), "Balance is %s", stats.Balance)

	// Income categories never show up in the breakdown
	if assert.Len(suite.T(), stats.ByCategory, 2) {
		assert.True(suite.T(), stats.ByCategory["Food"].Equal(decimal.NewFromFloat(80)), "Food sum is %s", stats.ByCategory["Food"])
		assert.True(suite.T(), stats.ByCategory["Transport"].Equal(decimal.NewFromFloat(20)), "Transport sum is %s", stats.ByCategory["Transport"])
	}

	assert.Len(suite.T(), stats.RecentTransactions, 5)
	assert.True(suite.T(), stats.Budget.Equal(decimal.NewFromFloat(500)), "Budget is %s", stats.Budget)
	assert.True(suite.T(), stats.BudgetRemaining.Equal(decimal.NewFromFloat(400)), "Remaining is %s", stats.BudgetRemaining)
}

func (suite *TestSuiteStandard) TestComputeDashboardEmptyMonth() {
	user := suite.createTestUser(models.User{Name: "Ellen Ripley"})

	stats, err := models.ComputeDashboard(models.DB, user.ID, time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC))
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), stats.TotalIncome.IsZero())
	assert.True(suite.T(), stats.TotalExpense.IsZero())
	assert.True(suite.T(), stats.Balance.IsZero())
	assert.Len(suite.T(), stats.ByCategory, 0)
	assert.Len(suite.T(), stats.RecentTransactions, 0)
}

// TestComputeDashboardDeterministic verifies that the same ledger and
// the same reference time always produce the same result.
func (suite *TestSuiteStandard) TestComputeDashboardDeterministic() {
	user := suite.createTestUser(models.User{Name: "Ellen Ripley"})

	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Title: "Coffee", Amount: decimal.NewFromFloat(3.4),
		Type: models.TypeExpense, Category: "Food",
		Date: time.Date(2022, 3, 10, 12, 0, 0, 0, time.UTC),
	})

	asOf := time.Date(2022, 3, 20, 0, 0, 0, 0, time.UTC)

	first, err := models.ComputeDashboard(models.DB, user.ID, asOf)
	assert.Nil(suite.T(), err)

	second, err := models.ComputeDashboard(models.DB, user.ID, asOf)
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), first, second)
}

// TestComputeDashboardIgnoresDeleted verifies that deleted transactions
// leave the statistics immediately.
func (suite *TestSuiteStandard) TestComputeDashboardIgnoresDeleted() {
	user := suite.createTestUser(models.User{Name: "Ellen Ripley"})

	keep := suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Title: "Coffee", Amount: decimal.NewFromFloat(10),
		Type: models.TypeExpense, Category: "Food",
		Date: time.Date(2022, 3, 10, 12, 0, 0, 0, time.UTC),
	})

	remove := suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Title: "Returned purchase", Amount: decimal.NewFromFloat(90),
		Type: models.TypeExpense, Category: "Shopping",
		Date: time.Date(2022, 3, 11, 12, 0, 0, 0, time.UTC),
	})

	assert.Nil(suite.T(), models.DB.Delete(&remove).Error)

	stats, err := models.ComputeDashboard(models.DB, user.ID, time.Date(2022, 3, 20, 0, 0, 0, 0, time.UTC))
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), stats.TotalExpense.Equal(decimal.NewFromFloat(10)), "Total expense is %s", stats.TotalExpense)
	assert.NotContains(suite.T(), stats.ByCategory, "Shopping")

	if assert.Len(suite.T(), stats.RecentTransactions, 1) {
		assert.Equal(suite.T(), keep.ID, stats.RecentTransactions[0].ID)
	}
}

// TestComputeDashboardScoped verifies that the statistics only cover the
// requested user.
func (suite *TestSuiteStandard) TestComputeDashboardScoped() {
	ellen := suite.createTestUser(models.User{Name: "Ellen Ripley"})
	dennis := suite.createTestUser(models.User{Name: "Dennis Parker"})

	_ = suite.createTestTransaction(models.Transaction{
		UserID: dennis.ID, Title: "Coffee", Amount: decimal.NewFromFloat(50),
		Type: models.TypeExpense, Category: "Food",
		Date: time.Date(2022, 3, 10, 12, 0, 0, 0, time.UTC),
	})

	stats, err := models.ComputeDashboard(models.DB, ellen.ID, time.Date(2022, 3, 20, 0, 0, 0, 0, time.UTC))
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), stats.TotalExpense.IsZero())
	assert.Len(suite.T(), stats.RecentTransactions, 0)
}

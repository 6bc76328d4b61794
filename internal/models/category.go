package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category classifies transactions for one user. The category a
// transaction references is matched by name, not by ID, so renaming or
// deleting a category does not touch the ledger.
type Category struct {
	DefaultModel
	UserID    uuid.UUID       `json:"userId" gorm:"uniqueIndex:category_user_name_type,priority:1" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	User      User            `json:"-"`
	Name      string          `json:"name" gorm:"uniqueIndex:category_user_name_type,priority:2" example:"Groceries"`
	Type      TransactionType `json:"type" gorm:"uniqueIndex:category_user_name_type,priority:3" example:"expense"`
	Icon      string          `json:"icon,omitempty" example:"cart"`
	Color     string          `json:"color,omitempty" example:"#3498db"`
	IsDefault bool            `json:"isDefault" default:"false"` // Seeded at registration?
}

// BeforeSave trims whitespace from string fields.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// DefaultCategories returns the category set that is seeded for a
// freshly registered user.
func DefaultCategories(userID uuid.UUID) []Category {
	return []Category{
		{UserID: userID, Name: "Salary", Type: TypeIncome, Icon: "cash", Color: "#27ae60", IsDefault: true},
		{UserID: userID, Name: "Freelance", Type: TypeIncome, Icon: "laptop", Color: "#2980b9", IsDefault: true},
		{UserID: userID, Name: "Investment", Type: TypeIncome, Icon: "trending-up", Color: "#8e44ad", IsDefault: true},
		{UserID: userID, Name: "Gift", Type: TypeIncome, Icon: "gift", Color: "#16a085", IsDefault: true},
		{UserID: userID, Name: "Food", Type: TypeExpense, Icon: "food", Color: "#e74c3c", IsDefault: true},
		{UserID: userID, Name: "Transport", Type: TypeExpense, Icon: "car", Color: "#f39c12", IsDefault: true},
		{UserID: userID, Name: "Shopping", Type: TypeExpense, Icon: "cart", Color: "#3498db", IsDefault: true},
		{UserID: userID, Name: "Bills", Type: TypeExpense, Icon: "file-document", Color: "#95a5a6", IsDefault: true},
		{UserID: userID, Name: "Entertainment", Type: TypeExpense, Icon: "movie", Color: "#9b59b6", IsDefault: true},
		{UserID: userID, Name: "Health", Type: TypeExpense, Icon: "heart", Color: "#e91e63", IsDefault: true},
		{UserID: userID, Name: "Other", Type: TypeExpense, Icon: "dots-horizontal", Color: "#7f8c8d", IsDefault: true},
	}
}

// SeedDefaultCategories inserts the default category set for a user if
// that user has no categories yet.
//
// This is a count-then-insert, not an upsert. Concurrent registration
// retries for the same user can both pass the count; the unique index on
// (user_id, name, type) rejects the duplicates then.
func SeedDefaultCategories(db *gorm.DB, userID uuid.UUID) error {
	var count int64
	err := db.Model(&Category{}).Where(&Category{UserID: userID}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	categories := DefaultCategories(userID)
	return db.Create(&categories).Error
}

// CategoriesForUser returns the user's categories, deduplicated by
// (name, type) keeping the first-created occurrence. The dedup guards
// against historical bad writes that predate the unique index.
func CategoriesForUser(db *gorm.DB, userID uuid.UUID) ([]Category, error) {
	var categories []Category
	err := db.
		Where(&Category{UserID: userID}).
		Order("datetime(categories.created_at) ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(categories))
	unique := make([]Category, 0, len(categories))
	for _, category := range categories {
		key := category.Name + "\x00" + string(category.Type)
		if seen[key] {
			continue
		}

		seen[key] = true
		unique = append(unique, category)
	}

	return unique, nil
}

package controllers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/models"
	sw_uuid "github.com/spendwise/backend/internal/uuid"
)

// ContextUserID is the gin context key under which the authentication
// middleware stores the resolved user ID.
const ContextUserID = "userID"

type URIID struct {
	ID sw_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type RegisterRequest struct {
	Name     string `json:"name" example:"Ellen Ripley"`
	Email    string `json:"email" example:"ellen@example.com"`
	Password string `json:"password" example:"secret1"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"ellen@example.com"`
	Password string `json:"password" example:"secret1"`
}

// PublicUser is the view of a user that is returned to clients. It
// never contains the credential hash.
type PublicUser struct {
	ID       uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name     string    `json:"name" example:"Ellen Ripley"`
	Email    string    `json:"email" example:"ellen@example.com"`
	Currency string    `json:"currency" example:"₹"`
}

func newPublicUser(user models.User) PublicUser {
	return PublicUser{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Currency: user.Currency,
	}
}

type AuthResponse struct {
	Success bool       `json:"success" example:"true"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// TransactionEditable contains the fields of a transaction that clients
// can set.
type TransactionEditable struct {
	Title    string                 `json:"title" example:"Coffee"`
	Amount   decimal.Decimal        `json:"amount" example:"14.03"`
	Type     models.TransactionType `json:"type" example:"expense"`
	Category string                 `json:"category" example:"Food"`
	Date     time.Time              `json:"date" example:"2022-04-02T19:28:44.491514Z"`
	Notes    string                 `json:"notes" example:"Double espresso"`
}

// model returns the database resource for the API representation of the
// editable fields. The owner is always the resolved caller, never taken
// from the request.
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:   userID,
		Title:    editable.Title,
		Amount:   editable.Amount,
		Type:     editable.Type,
		Category: editable.Category,
		Date:     editable.Date,
		Notes:    editable.Notes,
	}
}

// TransactionQueryFilter restricts the transaction list to one month.
// Month and year only take effect together, a partial pair is ignored.
type TransactionQueryFilter struct {
	Month int `form:"month" example:"3"`  // Month, 1 to 12
	Year  int `form:"year" example:"2022"` // Year, four digits
}

// CategoryEditable contains the fields of a category that clients can
// set.
type CategoryEditable struct {
	Name  string                 `json:"name" example:"Groceries"`
	Type  models.TransactionType `json:"type" example:"expense"`
	Color string                 `json:"color" example:"#3498db"`
	Icon  string                 `json:"icon" example:"cart"`
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID: userID,
		Name:   editable.Name,
		Type:   editable.Type,
		Color:  editable.Color,
		Icon:   editable.Icon,
	}
}

package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/spendwise/backend/internal/httperror"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", httputil.OptionsPutDelete)
		r.PUT("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// requestUserID returns the user ID the authentication middleware
// resolved for this request.
func requestUserID(c *gin.Context) uuid.UUID {
	return c.MustGet(ContextUserID).(uuid.UUID)
}

// @Summary		Get transactions
// @Description	Returns the caller's transactions ordered by date descending, optionally restricted to one month
// @Tags			Transactions
// @Produce		json
// @Success		200	{array}		models.Transaction
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			month	query	int	false	"Month, 1 to 12. Only used together with year."
// @Param			year	query	int	false	"Year. Only used together with month."
// @Router			/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	// Both month and year are needed for the filter, a partial pair is
	// treated as "no filter"
	var month *types.Month
	if filter.Month >= 1 && filter.Month <= 12 && filter.Year != 0 {
		m := types.NewMonth(filter.Year, time.Month(filter.Month))
		month = &m
	}

	transactions, err := models.TransactionsForUser(models.DB, requestUserID(c), month)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary		Create transaction
// @Description	Creates a new transaction owned by the caller
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Transaction
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	if strings.TrimSpace(editable.Title) == "" || editable.Amount.IsZero() || editable.Type == "" || strings.TrimSpace(editable.Category) == "" {
		c.JSON(http.StatusBadRequest, httperror.New(errMissingFields))
		return
	}

	if !slices.Contains(models.TransactionTypes, editable.Type) {
		c.JSON(http.StatusBadRequest, httperror.New(errTypeInvalid))
		return
	}

	transaction := editable.model(requestUserID(c))
	err = models.DB.Create(&transaction).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// @Summary		Update transaction
// @Description	Updates an existing transaction owned by the caller. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Transaction
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			id			path		string				true	"ID of the transaction"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/transactions/{id} [put]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return
	}

	// Scoped to the caller: a transaction owned by somebody else yields
	// the same 404 as one that does not exist
	transaction, err := models.TransactionForUser(models.DB, requestUserID(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	var update TransactionEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	if update.Type != "" && !slices.Contains(models.TransactionTypes, update.Type) {
		c.JSON(http.StatusBadRequest, httperror.New(errTypeInvalid))
		return
	}

	// If the amount set via the API request is not existent or
	// is 0, we use the old amount
	if update.Amount.IsZero() {
		update.Amount = transaction.Amount
	}

	err = models.DB.Model(&transaction).Select("", updateFields...).Updates(update.model(transaction.UserID)).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// @Summary		Delete transaction
// @Description	Deletes a transaction owned by the caller
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	SuccessResponse
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return
	}

	transaction, err := models.TransactionForUser(models.DB, requestUserID(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

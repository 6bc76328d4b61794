package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"

	"github.com/spendwise/backend/internal/httperror"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetCategories)
	r.POST("", CreateCategory)
}

// @Summary		Get categories
// @Description	Returns the caller's categories, deduplicated by name and type
// @Tags			Categories
// @Produce		json
// @Success		200	{array}		models.Category
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/categories [get]
func GetCategories(c *gin.Context) {
	categories, err := models.CategoriesForUser(models.DB, requestUserID(c))
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary		Create category
// @Description	Creates a new category owned by the caller. Name and type must be unique per user.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Category
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	if strings.TrimSpace(editable.Name) == "" || editable.Type == "" {
		c.JSON(http.StatusBadRequest, httperror.New(errNameTypeRequired))
		return
	}

	if !slices.Contains(models.TransactionTypes, editable.Type) {
		c.JSON(http.StatusBadRequest, httperror.New(errTypeInvalid))
		return
	}

	userID := requestUserID(c)

	// Explicit duplicate check for a friendly error. The unique index
	// on (user_id, name, type) still catches concurrent creations.
	var existing models.Category
	err = models.DB.Where(&models.Category{UserID: userID, Name: strings.TrimSpace(editable.Name), Type: editable.Type}).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, httperror.New(models.ErrCategoryExists))
		return
	}
	if !errors.Is(err, models.ErrCategoryNotFound) {
		c.JSON(status(err), httperror.New(err))
		return
	}

	category := editable.model(userID)
	err = models.DB.Create(&category).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, category)
}

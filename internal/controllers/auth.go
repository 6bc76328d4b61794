package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/auth"
	"github.com/spendwise/backend/internal/httperror"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// RegisterAuthRoutes registers the unauthenticated routes for
// registration and login with the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", Login)
}

// @Summary		Register
// @Description	Registers a new user, seeds their default categories and returns a session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	AuthResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/auth/register [post]
func Register(c *gin.Context) {
	var request RegisterRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	if strings.TrimSpace(request.Name) == "" || strings.TrimSpace(request.Email) == "" || request.Password == "" {
		c.JSON(http.StatusBadRequest, httperror.New(errAllFieldsRequired))
		return
	}

	_, err = models.UserByEmail(models.DB, request.Email)
	if err == nil {
		c.JSON(http.StatusBadRequest, httperror.New(models.ErrEmailTaken))
		return
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		c.JSON(status(err), httperror.New(err))
		return
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(models.ErrGeneral))
		return
	}

	user := models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hash,
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	// Seeding is not atomic with user creation, see the doc comment of
	// SeedDefaultCategories
	err = models.SeedDefaultCategories(models.DB, user.ID)
	if err != nil && !errors.Is(err, models.ErrCategoryExists) {
		c.JSON(status(err), httperror.New(err))
		return
	}

	token, err := auth.IssueToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(models.ErrGeneral))
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Token:   token,
		User:    newPublicUser(user),
	})
}

// @Summary		Login
// @Description	Verifies credentials and returns a fresh session token. The error message never reveals whether the email or the password was wrong.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	AuthResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/auth/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	if strings.TrimSpace(request.Email) == "" || request.Password == "" {
		c.JSON(http.StatusBadRequest, httperror.New(errEmailPasswordRequired))
		return
	}

	user, err := models.UserByEmail(models.DB, request.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, httperror.New(errInvalidLogin))
			return
		}

		c.JSON(status(err), httperror.New(err))
		return
	}

	if !auth.CheckPasswordHash(request.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, httperror.New(errInvalidLogin))
		return
	}

	token, err := auth.IssueToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(models.ErrGeneral))
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Token:   token,
		User:    newPublicUser(user),
	})
}

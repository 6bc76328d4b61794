package controllers_test

import (
	"net/http"
	"testing"

	"github.com/spendwise/backend/internal/controllers"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRegister() {
	response := suite.registerTestUser("Ellen Ripley", "Ellen@Example.com", "secret1")

	assert.True(suite.T(), response.Success)
	assert.NotEmpty(suite.T(), response.Token)
	assert.Equal(suite.T(), "Ellen Ripley", response.User.Name)

	// Emails are matched case-insensitively, so they are stored lower-cased
	assert.Equal(suite.T(), "ellen@example.com", response.User.Email)
	assert.Equal(suite.T(), models.DefaultCurrency, response.User.Currency)

	// The token is usable right away
	r := test.Request(suite.T(), http.MethodGet, "/transactions", "", bearer(response.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestRegisterNoCredentialLeak() {
	r := test.Request(suite.T(), http.MethodPost, "/auth/register", controllers.RegisterRequest{
		Name:     "Ellen Ripley",
		Email:    "ellen@example.com",
		Password: "secret1",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Neither the password nor its hash may ever be in a response
	assert.NotContains(suite.T(), r.Body.String(), "secret1")
	assert.NotContains(suite.T(), r.Body.String(), "password")
}

func (suite *TestSuiteStandard) TestRegisterSeedsDefaultCategories() {
	response := suite.registerTestUser("Ellen Ripley", "ellen@example.com", "secret1")

	r := test.Request(suite.T(), http.MethodGet, "/categories", "", bearer(response.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories []models.Category
	test.DecodeResponse(suite.T(), &r, &categories)

	assert.Len(suite.T(), categories, len(models.DefaultCategories(response.User.ID)))

	var names []string
	for _, category := range categories {
		assert.True(suite.T(), category.IsDefault)
		assert.Equal(suite.T(), response.User.ID, category.UserID)
		names = append(names, category.Name)
	}

	assert.Contains(suite.T(), names, "Salary")
	assert.Contains(suite.T(), names, "Food")
	assert.Contains(suite.T(), names, "Other")
}

func (suite *TestSuiteStandard) TestRegisterMissingFields() {
	tests := []struct {
		name string // Name of the test
		body any    // The request body
		err  string // The expected error message
	}{
		{"No name", controllers.RegisterRequest{Email: "ellen@example.com", Password: "secret1"}, "All fields are required"},
		{"No email", controllers.RegisterRequest{Name: "Ellen Ripley", Password: "secret1"}, "All fields are required"},
		{"No password", controllers.RegisterRequest{Name: "Ellen Ripley", Email: "ellen@example.com"}, "All fields are required"},
		{"Whitespace name", controllers.RegisterRequest{Name: "   ", Email: "ellen@example.com", Password: "secret1"}, "All fields are required"},
		{"Empty body", "", "the request body must not be empty"},
		{"Broken body", `{ "name": `, "the body of your request contains invalid or un-parseable data. Please check and try again"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "/auth/register", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	_ = suite.registerTestUser("Ellen Ripley", "ellen@example.com", "secret1")

	// The same address with different casing is still a duplicate
	r := test.Request(suite.T(), http.MethodPost, "/auth/register", controllers.RegisterRequest{
		Name:     "Someone Else",
		Email:    "Ellen@Example.com",
		Password: "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), "Email already registered", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestLogin() {
	registered := suite.registerTestUser("Ellen Ripley", "ellen@example.com", "secret1")

	r := test.Request(suite.T(), http.MethodPost, "/auth/login", controllers.LoginRequest{
		Email:    "Ellen@Example.com",
		Password: "secret1",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.AuthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Success)
	assert.NotEmpty(suite.T(), response.Token)
	assert.Equal(suite.T(), registered.User.ID, response.User.ID)

	// The fresh token resolves to the same user
	protected := test.Request(suite.T(), http.MethodGet, "/stats/dashboard", "", bearer(response.Token))
	test.AssertHTTPStatus(suite.T(), &protected, http.StatusOK)
}

// TestLoginInvalidCredentials verifies that an unknown email and a wrong
// password produce the exact same error so that account existence cannot
// be probed.
func (suite *TestSuiteStandard) TestLoginInvalidCredentials() {
	_ = suite.registerTestUser("Ellen Ripley", "ellen@example.com", "secret1")

	tests := []struct {
		name  string
		email string
		pass  string
	}{
		{"Unknown email", "nobody@example.com", "secret1"},
		{"Wrong password", "ellen@example.com", "wrong"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "/auth/login", controllers.LoginRequest{Email: tt.email, Password: tt.pass})
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
			assert.Equal(t, "Invalid email or password", test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestLoginMissingFields() {
	tests := []struct {
		name string
		body any
	}{
		{"No email", controllers.LoginRequest{Password: "secret1"}},
		{"No password", controllers.LoginRequest{Email: "ellen@example.com"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "/auth/login", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, "Email and password required", test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestAuthOptions() {
	for _, path := range []string{"/auth/register", "/auth/login"} {
		r := test.Request(suite.T(), http.MethodOptions, path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
	}
}

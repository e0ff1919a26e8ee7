package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/VanaBlak/vana-boutique-main/internal/models"
)

func TestRegisterHandler(t *testing.T) {
	env := newTestEnv(t)

	user := env.register("vana")
	require.Equal(t, "vana", user.Username)
	require.NotZero(t, user.ID)

	// Hash never leaks through the JSON surface.
	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/register", map[string]string{
		"first_name": "Test",
		"last_name":  "User",
		"username":   "second",
		"password":   "password",
	})
	require.NoError(t, env.Auth.Register(c))
	require.NotContains(t, rec.Body.String(), "password")
	require.NotContains(t, rec.Body.String(), "PasswordHash")
}

func TestRegisterHandlerConflict(t *testing.T) {
	env := newTestEnv(t)

	env.register("vana")

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/register", map[string]string{
		"first_name": "Other",
		"last_name":  "Person",
		"username":   "vana",
		"password":   "different",
	})
	err := env.Auth.Register(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusConflict, he.Code)
}

func TestRegisterHandlerValidation(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/register", map[string]string{
		"username": "vana",
	})
	err := env.Auth.Register(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestLoginHandler(t *testing.T) {
	env := newTestEnv(t)

	user := env.register("vana")

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/login", map[string]string{
		"username": "vana",
		"password": "password",
	})
	require.NoError(t, env.Auth.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string      `json:"access_token"`
		User        models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, user.ID, resp.User.ID)

	cookies := rec.Result().Cookies()
	var found bool
	for _, ck := range cookies {
		if ck.Name == "accessToken" && ck.Value != "" {
			found = true
		}
	}
	require.True(t, found, "expected accessToken cookie")

	// Login creates the cart lazily.
	var cart models.Cart
	require.NoError(t, env.DB.Where("user_id = ?", user.ID).First(&cart).Error)
}

func TestLoginHandlerBadPassword(t *testing.T) {
	env := newTestEnv(t)

	env.register("vana")

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/login", map[string]string{
		"username": "vana",
		"password": "wrong",
	})
	err := env.Auth.Login(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestLogOutHandler(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/logout", nil)
	require.NoError(t, env.Auth.LogOut(c))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, "accessToken", cookies[0].Name)
	require.Empty(t, cookies[0].Value)
}

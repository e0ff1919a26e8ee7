package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/VanaBlak/vana-boutique-main/internal/models"
	"github.com/VanaBlak/vana-boutique-main/internal/repo"
	"github.com/VanaBlak/vana-boutique-main/internal/service"
)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	DB       *gorm.DB
	Auth     *AuthHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Catalog  *CatalogHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// Each pooled connection gets its own :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	))

	store := repo.New(db)
	identitySvc := &service.IdentityService{Repo: store}
	cartSvc := &service.CartService{Repo: store}

	return &testEnv{
		T:        t,
		E:        echo.New(),
		DB:       db,
		Auth:     &AuthHandler{Identity: identitySvc, Cart: cartSvc, JWTSecret: []byte("test-secret")},
		Cart:     &CartHandler{Svc: cartSvc},
		Checkout: &CheckoutHandler{Svc: &service.CheckoutService{Repo: store}},
		Catalog:  &CatalogHandler{Svc: &service.CatalogService{Repo: store}, Index: "products"},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) asUser(c echo.Context, userID uint) {
	c.Set("userID", userID)
	c.Set("role", "user")
}

func (env *testEnv) register(username string) *models.User {
	env.T.Helper()

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/register", map[string]string{
		"first_name": "Test",
		"last_name":  "User",
		"username":   username,
		"password":   "password",
	})
	require.NoError(env.T, env.Auth.Register(c))
	require.Equal(env.T, http.StatusCreated, rec.Code)

	var user models.User
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &user))
	return &user
}

func (env *testEnv) seedProduct(name string, price int64) *models.Product {
	env.T.Helper()

	prod := models.Product{Name: name, Price: price}
	require.NoError(env.T, env.DB.Create(&prod).Error)
	return &prod
}

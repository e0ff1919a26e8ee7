package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/VanaBlak/vana-boutique-main/internal/models"
	"github.com/VanaBlak/vana-boutique-main/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
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

	return repo.New(db)
}

func createUser(t *testing.T, r *repo.GormRepo, username string) *models.User {
	t.Helper()

	user := models.User{
		FirstName:    "Test",
		LastName:     "User",
		Username:     username,
		PasswordHash: "irrelevant",
		Role:         "user",
	}
	require.NoError(t, r.DB.Create(&user).Error)
	return &user
}

func createProduct(t *testing.T, r *repo.GormRepo, name string, price int64) *models.Product {
	t.Helper()

	prod := models.Product{Name: name, Price: price}
	require.NoError(t, r.DB.Create(&prod).Error)
	return &prod
}

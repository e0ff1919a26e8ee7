package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/VanaBlak/vana-boutique-main/internal/models"
)

func TestAddItemAccumulatesQuantity(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user := createUser(t, r, "alice")
	prod := createProduct(t, r, "silk scarf", 500)

	item, err := svc.AddItem(ctx, user.ID, prod.ID, 2)
	require.NoError(t, err)
	require.Equal(t, uint(2), item.Quantity)

	item, err = svc.AddItem(ctx, user.ID, prod.ID, 3)
	require.NoError(t, err)
	require.Equal(t, uint(5), item.Quantity)

	items, err := svc.ListItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, prod.ID, items[0].ProductID)
	require.Equal(t, uint(5), items[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user := createUser(t, r, "alice")

	_, err := svc.AddItem(ctx, user.ID, 999, 1)
	require.ErrorIs(t, err, ErrNotFound)

	// Nothing was written, not even the lazy cart.
	var cartCount, itemCount int64
	require.NoError(t, r.DB.Model(&models.Cart{}).Count(&cartCount).Error)
	require.NoError(t, r.DB.Model(&models.CartItem{}).Count(&itemCount).Error)
	require.Zero(t, cartCount)
	require.Zero(t, itemCount)
}

func TestAddItemValidation(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user := createUser(t, r, "alice")
	prod := createProduct(t, r, "silk scarf", 500)

	_, err := svc.AddItem(ctx, user.ID, 0, 1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddItem(ctx, user.ID, prod.ID, 0)
	require.ErrorIs(t, err, ErrValidation)
}

func TestRemoveItemByID(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user := createUser(t, r, "alice")
	scarf := createProduct(t, r, "silk scarf", 500)
	hat := createProduct(t, r, "sun hat", 300)

	first, err := svc.AddItem(ctx, user.ID, scarf.ID, 2)
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, user.ID, hat.ID, 4)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, user.ID, first.ID))

	items, err := svc.ListItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, second.ID, items[0].ID)
	require.Equal(t, uint(4), items[0].Quantity)
}

func TestRemoveItemMissing(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user := createUser(t, r, "alice")

	// No cart at all yet.
	require.ErrorIs(t, svc.RemoveItem(ctx, user.ID, 1), ErrNotFound)

	_, err := svc.EnsureCart(ctx, user.ID)
	require.NoError(t, err)
	require.ErrorIs(t, svc.RemoveItem(ctx, user.ID, 42), ErrNotFound)
}

func TestRemoveItemScopedToOwnCart(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	alice := createUser(t, r, "alice")
	bob := createUser(t, r, "bob")
	prod := createProduct(t, r, "silk scarf", 500)

	item, err := svc.AddItem(ctx, alice.ID, prod.ID, 1)
	require.NoError(t, err)

	_, err = svc.EnsureCart(ctx, bob.ID)
	require.NoError(t, err)

	require.ErrorIs(t, svc.RemoveItem(ctx, bob.ID, item.ID), ErrNotFound)

	items, err := svc.ListItems(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestListItemsWithoutCart(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}

	user := createUser(t, r, "alice")

	items, err := svc.ListItems(context.Background(), user.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestDecrementItem(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user := createUser(t, r, "alice")
	prod := createProduct(t, r, "silk scarf", 500)

	item, err := svc.AddItem(ctx, user.ID, prod.ID, 3)
	require.NoError(t, err)

	deleted, updated, err := svc.DecrementItem(ctx, user.ID, item.ID, 1)
	require.NoError(t, err)
	require.False(t, deleted)
	require.Equal(t, uint(2), updated.Quantity)

	// Quantity may never persist at zero: a decrement past the remaining
	// amount deletes the row.
	deleted, _, err = svc.DecrementItem(ctx, user.ID, item.ID, 5)
	require.NoError(t, err)
	require.True(t, deleted)

	items, err := svc.ListItems(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, items)

	_, _, err = svc.DecrementItem(ctx, user.ID, item.ID, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEnsureCartIdempotent(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user := createUser(t, r, "alice")

	first, err := svc.EnsureCart(ctx, user.ID)
	require.NoError(t, err)
	second, err := svc.EnsureCart(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, r.DB.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

// Two callers adding the same new product to the same cart must end up with
// one row holding the combined quantity, whatever the interleaving.
func TestInterleavedAddsSingleRow(t *testing.T) {
	r := newTestRepo(t)
	a := &CartService{Repo: r}
	b := &CartService{Repo: r}
	ctx := context.Background()

	user := createUser(t, r, "alice")
	prod := createProduct(t, r, "silk scarf", 500)

	const trials = 20
	var want uint
	for i := 0; i < trials; i++ {
		caller := a
		if i%2 == 1 {
			caller = b
		}
		_, err := caller.AddItem(ctx, user.ID, prod.ID, 1)
		require.NoError(t, err)
		want++
	}

	var rows []models.CartItem
	require.NoError(t, r.DB.Where("product_id = ?", prod.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, want, rows[0].Quantity)
}

func TestCartItemQuantityNeverZero(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	user := createUser(t, r, "alice")
	prod := createProduct(t, r, "silk scarf", 500)

	svc := &CartService{Repo: r}
	item, err := svc.AddItem(ctx, user.ID, prod.ID, 1)
	require.NoError(t, err)

	deleted, _, err := svc.DecrementItem(ctx, user.ID, item.ID, 1)
	require.NoError(t, err)
	require.True(t, deleted)

	err = r.DB.First(&models.CartItem{}, item.ID).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

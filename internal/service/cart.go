package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/VanaBlak/vana-boutique-main/internal/models"
	"github.com/VanaBlak/vana-boutique-main/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) EnsureCart(ctx context.Context, userID uint) (*models.Cart, error) {
	return s.Repo.EnsureCart(ctx, userID)
}

// AddItem resolves the product before touching the cart, so an unknown
// product id mutates nothing.
func (s *CartService) AddItem(ctx context.Context, userID, productID, quantity uint) (*models.CartItem, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product_id is required: %w", ErrValidation)
	}
	if quantity == 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}

	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return nil, err
	}

	cart, err := s.Repo.EnsureCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.Repo.AddCartItem(ctx, cart.ID, productID, quantity)
}

// RemoveItem deletes the cart item by its stable id, scoped to the caller's
// own cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	if itemID == 0 {
		return fmt.Errorf("item id is required: %w", ErrValidation)
	}

	cart, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("cart item %d: %w", itemID, ErrNotFound)
		}
		return err
	}

	if err := s.Repo.DeleteCartItem(ctx, cart.ID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("cart item %d: %w", itemID, ErrNotFound)
		}
		return err
	}
	return nil
}

// DecrementItem lowers the item's quantity by n; reaching zero removes the
// row. Reports whether the row was deleted, and the item otherwise.
func (s *CartService) DecrementItem(ctx context.Context, userID, itemID, n uint) (bool, *models.CartItem, error) {
	if itemID == 0 {
		return false, nil, fmt.Errorf("item id is required: %w", ErrValidation)
	}
	if n == 0 {
		n = 1
	}

	cart, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil, fmt.Errorf("cart item %d: %w", itemID, ErrNotFound)
		}
		return false, nil, err
	}

	deleted, item, err := s.Repo.DecrementCartItem(ctx, cart.ID, itemID, n)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil, fmt.Errorf("cart item %d: %w", itemID, ErrNotFound)
		}
		return false, nil, err
	}
	return deleted, item, nil
}

// ListItems returns the ordered items of the user's cart; a user without a
// cart simply has no items yet.
func (s *CartService) ListItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	cart, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.CartItem{}, nil
		}
		return nil, err
	}
	return s.Repo.GetCartItems(ctx, cart.ID)
}

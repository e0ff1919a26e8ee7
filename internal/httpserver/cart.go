package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VanaBlak/vana-boutique-main/internal/events"
	"github.com/VanaBlak/vana-boutique-main/internal/logging"
	"github.com/VanaBlak/vana-boutique-main/internal/service"
	"github.com/VanaBlak/vana-boutique-main/internal/tokens"
	"github.com/VanaBlak/vana-boutique-main/internal/transport"
)

type CartHandler struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicCartEvents, fmt.Sprint(event["userID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.cart")

	userID, err := tokens.UserID(c)
	if err != nil {
		return err
	}

	items, err := h.Svc.ListItems(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "add.cart")

	userID, err := tokens.UserID(c)
	if err != nil {
		return err
	}

	var req transport.AddItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.Svc.AddItem(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		l.Warn("add_to_cart_error", "product_id", req.ProductID, "error", err)
		return httpError(err)
	}

	h.publish(c, map[string]any{
		"type":      "cart_item_added",
		"userID":    userID,
		"productID": item.ProductID,
		"quantity":  item.Quantity,
	})

	l.Info("item added to cart", "product_id", item.ProductID, "quantity", item.Quantity)
	return c.JSON(http.StatusOK, item)
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "remove.cart")

	userID, err := tokens.UserID(c)
	if err != nil {
		return err
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil || itemID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	if err := h.Svc.RemoveItem(ctx, userID, uint(itemID)); err != nil {
		l.Warn("remove_from_cart_error", "item_id", itemID, "error", err)
		return httpError(err)
	}

	h.publish(c, map[string]any{
		"type":   "cart_item_removed",
		"userID": userID,
		"itemID": itemID,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) DecrementFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "decrement.cart")

	userID, err := tokens.UserID(c)
	if err != nil {
		return err
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil || itemID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	var req transport.DecrementItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	deleted, item, err := h.Svc.DecrementItem(ctx, userID, uint(itemID), req.Quantity)
	if err != nil {
		l.Warn("decrement_cart_error", "item_id", itemID, "error", err)
		return httpError(err)
	}

	if deleted {
		h.publish(c, map[string]any{
			"type":   "cart_item_removed",
			"userID": userID,
			"itemID": itemID,
		})
		return c.JSON(http.StatusOK, echo.Map{"deleted_item": itemID})
	}

	h.publish(c, map[string]any{
		"type":        "cart_item_decremented",
		"userID":      userID,
		"itemID":      itemID,
		"newQuantity": item.Quantity,
	})
	return c.JSON(http.StatusOK, item)
}

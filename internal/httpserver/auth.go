package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VanaBlak/vana-boutique-main/internal/events"
	"github.com/VanaBlak/vana-boutique-main/internal/logging"
	"github.com/VanaBlak/vana-boutique-main/internal/service"
	"github.com/VanaBlak/vana-boutique-main/internal/tokens"
	"github.com/VanaBlak/vana-boutique-main/internal/transport"
)

type AuthHandler struct {
	Identity  *service.IdentityService
	Cart      *service.CartService
	Producer  *events.Producer
	JWTSecret []byte
}

func CreateCookie(name, value, path string, expTime time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expTime,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) publish(c echo.Context, topic string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, topic, fmt.Sprint(event["userID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Identity.Register(ctx, req.FirstName, req.LastName, req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}

	h.publish(c, events.TopicUserEvents, map[string]any{
		"type":     "user_registered",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Identity.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}

	// The storefront creates the cart on login if the user has none yet.
	if _, err := h.Cart.EnsureCart(ctx, user.ID); err != nil {
		return httpError(err)
	}

	accessExp := time.Now().Add(tokens.AccessTTL)
	accessToken, err := tokens.SignAccessToken(user.ID, user.Role, h.JWTSecret, accessExp)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create token")
	}

	c.SetCookie(CreateCookie("accessToken", accessToken, "/", accessExp))

	h.publish(c, events.TopicUserEvents, map[string]any{
		"type":     "user_logged_in",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"access_token": accessToken,
		"user":         user,
	})
}

func (h *AuthHandler) LogOut(c echo.Context) error {
	expired := time.Now().Add(-1 * time.Hour)
	c.SetCookie(CreateCookie("accessToken", "", "/", expired))
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := tokens.UserID(c)
	if err != nil {
		return err
	}

	user, err := h.Identity.GetUser(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VanaBlak/vana-boutique-main/internal/logging"
	"github.com/VanaBlak/vana-boutique-main/internal/service"
	"github.com/VanaBlak/vana-boutique-main/internal/tokens"
)

type CheckoutHandler struct {
	Svc *service.CheckoutService
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout")

	userID, err := tokens.UserID(c)
	if err != nil {
		return err
	}

	summary, err := h.Svc.Summary(ctx, userID)
	if err != nil {
		l.Error("checkout_error", "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, summary)
}

package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/VanaBlak/vana-boutique-main/internal/tokens"
)

type Deps struct {
	AuthHandler     *AuthHandler
	CatalogHandler  *CatalogHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	SearchHandler   *SearchHandler
	TokenMW         *tokens.Middleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.LogOut)
	v1.GET("/me", d.AuthHandler.Me, d.TokenMW.RequireAuth)

	products := v1.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	if d.SearchHandler != nil {
		v1.GET("/search", d.SearchHandler.Search)
	}

	admin := v1.Group("/admin", d.TokenMW.RequireAuth, d.TokenMW.AdminOnly)
	admin.POST("/products", d.CatalogHandler.CreateProduct)
	admin.PATCH("/products/:id", d.CatalogHandler.PatchProduct)
	admin.DELETE("/products/:id", d.CatalogHandler.DeleteProduct)

	cart := v1.Group("/cart", d.TokenMW.RequireAuth)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.DELETE("/items/:id", d.CartHandler.RemoveFromCart)
	cart.POST("/items/:id/decrement", d.CartHandler.DecrementFromCart)

	v1.GET("/checkout", d.CheckoutHandler.Checkout, d.TokenMW.RequireAuth)
}

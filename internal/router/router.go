package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"sweetshop/internal/auth"
	"sweetshop/internal/config"
	apperrors "sweetshop/internal/errors"
	"sweetshop/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	sweetHandler *handler.SweetHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/sweets", sweetHandler.ListSweets)
	e.GET("/sweets/search", sweetHandler.SearchSweets)
	e.GET("/seed/sweets", seedHandler.SeedSweets)

	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		// Every credential failure is a 401; echo-jwt's default answers a
		// missing token with 400.
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Message: "missing or invalid token",
				Code:    "UNAUTHENTICATED",
			})
		},
	})

	// Routes requiring any authenticated identity
	authed := e.Group("", jwtMiddleware)
	authed.POST("/sweets/:id/purchase", sweetHandler.PurchaseSweet)
	authed.GET("/cart", cartHandler.ListCart)
	authed.POST("/cart", cartHandler.AddToCart)
	authed.DELETE("/cart/:id", cartHandler.RemoveFromCart)
	authed.DELETE("/cart", cartHandler.ClearCart)
	authed.POST("/orders/checkout", orderHandler.Checkout)
	authed.GET("/orders", orderHandler.ListOrders)

	// Routes requiring the admin role
	admin := e.Group("", jwtMiddleware, auth.RequireAdmin)
	admin.POST("/sweets", sweetHandler.CreateSweet)
	admin.PUT("/sweets/:id", sweetHandler.UpdateSweet)
	admin.DELETE("/sweets/:id", sweetHandler.DeleteSweet)
	admin.POST("/sweets/:id/restock", sweetHandler.RestockSweet)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

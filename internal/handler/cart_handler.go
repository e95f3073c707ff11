package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sweetshop/internal/auth"
	"sweetshop/internal/errors"
	"sweetshop/internal/service"
)

// CartHandler handles cart endpoints.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddToCartRequest represents a cart addition.
type AddToCartRequest struct {
	SweetID  string `json:"sweetId" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// ListCart godoc
// @Summary List the caller's cart with live sweet snapshots
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CartItemWithSweet
// @Failure 401 {object} errors.ErrorResponse
// @Router /cart [get]
func (h *CartHandler) ListCart(c echo.Context) error {
	userID, err := auth.UserIDFrom(c)
	if err != nil {
		return err
	}

	items, err := h.cartService.ListCart(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, items)
}

// AddToCart godoc
// @Summary Add a sweet to the caller's cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddToCartRequest true "Sweet and quantity"
// @Success 200 {object} model.CartItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /cart [post]
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, err := auth.UserIDFrom(c)
	if err != nil {
		return err
	}

	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
	}

	sweetID, err := uuid.Parse(req.SweetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid sweetId",
			Code:    "INVALID_REQUEST",
		})
	}

	item, err := h.cartService.AddToCart(c.Request().Context(), userID, sweetID, req.Quantity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, item)
}

// RemoveFromCart godoc
// @Summary Remove a single cart line
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/{id} [delete]
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	if _, err := auth.UserIDFrom(c); err != nil {
		return err
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrCartItemNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.cartService.RemoveFromCart(c.Request().Context(), itemID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Item removed from cart"})
}

// ClearCart godoc
// @Summary Remove every line from the caller's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := auth.UserIDFrom(c)
	if err != nil {
		return err
	}

	if err := h.cartService.ClearCart(c.Request().Context(), userID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Cart cleared"})
}

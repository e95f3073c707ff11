package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"sweetshop/internal/errors"
	"sweetshop/internal/model"
	"sweetshop/internal/repository"
	"sweetshop/internal/service"
)

// SweetHandler handles catalog and inventory endpoints.
type SweetHandler struct {
	catalogService   service.CatalogService
	inventoryService service.InventoryService
}

// NewSweetHandler creates a new sweet handler.
func NewSweetHandler(catalogService service.CatalogService, inventoryService service.InventoryService) *SweetHandler {
	return &SweetHandler{
		catalogService:   catalogService,
		inventoryService: inventoryService,
	}
}

// CreateSweetRequest represents a new catalog entry.
type CreateSweetRequest struct {
	Name        string              `json:"name" validate:"required"`
	Category    model.SweetCategory `json:"category" validate:"required,oneof=mithai laddu halwa barfi"`
	Description string              `json:"description" validate:"required"`
	Price       string              `json:"price" validate:"required"`
	Quantity    int                 `json:"quantity" validate:"gte=0"`
	ImageURL    string              `json:"imageUrl" validate:"omitempty,url"`
}

// UpdateSweetRequest represents a partial catalog edit.
type UpdateSweetRequest struct {
	Name        *string              `json:"name"`
	Category    *model.SweetCategory `json:"category" validate:"omitempty,oneof=mithai laddu halwa barfi"`
	Description *string              `json:"description"`
	Price       *string              `json:"price"`
	Quantity    *int                 `json:"quantity" validate:"omitempty,gte=0"`
	ImageURL    *string              `json:"imageUrl" validate:"omitempty,url"`
}

// QuantityRequest carries the amount for purchase and restock.
type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListSweets godoc
// @Summary List all sweets
// @Tags sweets
// @Produce json
// @Success 200 {array} model.Sweet
// @Failure 500 {object} errors.ErrorResponse
// @Router /sweets [get]
func (h *SweetHandler) ListSweets(c echo.Context) error {
	sweets, err := h.catalogService.ListSweets(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, sweets)
}

// SearchSweets godoc
// @Summary Search sweets by text, category and price range
// @Tags sweets
// @Produce json
// @Param query query string false "Substring of name or description"
// @Param category query string false "Exact category"
// @Param minPrice query string false "Minimum price"
// @Param maxPrice query string false "Maximum price"
// @Success 200 {array} model.Sweet
// @Failure 400 {object} errors.ErrorResponse
// @Router /sweets/search [get]
func (h *SweetHandler) SearchSweets(c echo.Context) error {
	filter := repository.SweetFilter{
		Query:    c.QueryParam("query"),
		Category: model.SweetCategory(c.QueryParam("category")),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Message: "invalid search parameters",
				Code:    "INVALID_SEARCH",
			})
		}
		filter.MinPrice = &min
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Message: "invalid search parameters",
				Code:    "INVALID_SEARCH",
			})
		}
		filter.MaxPrice = &max
	}

	sweets, err := h.catalogService.SearchSweets(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, sweets)
}

// CreateSweet godoc
// @Summary Create a sweet
// @Tags sweets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSweetRequest true "Sweet data"
// @Success 200 {object} model.Sweet
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /sweets [post]
func (h *SweetHandler) CreateSweet(c echo.Context) error {
	var req CreateSweetRequest
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

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid price",
			Code:    "INVALID_PRICE",
		})
	}

	sweet := &model.Sweet{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       price,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
	}

	created, err := h.catalogService.CreateSweet(c.Request().Context(), sweet)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, created)
}

// UpdateSweet godoc
// @Summary Update a sweet (partial)
// @Tags sweets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sweet ID"
// @Param request body UpdateSweetRequest true "Fields to change"
// @Success 200 {object} model.Sweet
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sweets/{id} [put]
func (h *SweetHandler) UpdateSweet(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrSweetNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req UpdateSweetRequest
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

	update := service.SweetUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Message: "invalid price",
				Code:    "INVALID_PRICE",
			})
		}
		update.Price = &price
	}

	sweet, err := h.catalogService.UpdateSweet(c.Request().Context(), id, update)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, sweet)
}

// DeleteSweet godoc
// @Summary Delete a sweet
// @Tags sweets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sweet ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sweets/{id} [delete]
func (h *SweetHandler) DeleteSweet(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrSweetNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.catalogService.DeleteSweet(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Sweet deleted successfully"})
}

// PurchaseSweet godoc
// @Summary Purchase units of a sweet
// @Tags sweets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sweet ID"
// @Param request body QuantityRequest true "Units to purchase"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /sweets/{id}/purchase [post]
func (h *SweetHandler) PurchaseSweet(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id cannot match a sweet; report it the same way as
		// a short stock so existence is not leaked.
		httpErr := errors.MapErrorToHTTP(errors.ErrInsufficientStock)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req QuantityRequest
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

	if err := h.inventoryService.Purchase(c.Request().Context(), id, req.Quantity); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Purchase successful"})
}

// RestockSweet godoc
// @Summary Restock units of a sweet
// @Tags sweets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sweet ID"
// @Param request body QuantityRequest true "Units to add"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sweets/{id}/restock [post]
func (h *SweetHandler) RestockSweet(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrSweetNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req QuantityRequest
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

	if err := h.inventoryService.Restock(c.Request().Context(), id, req.Quantity); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Restock successful"})
}

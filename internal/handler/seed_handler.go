package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sweetshop/internal/seed"
	"sweetshop/internal/service"
)

// SeedHandler handles demo data endpoints.
type SeedHandler struct {
	catalogService service.CatalogService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(catalogService service.CatalogService) *SeedHandler {
	return &SeedHandler{catalogService: catalogService}
}

// SeedSweetsResponse represents the seed response.
type SeedSweetsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedSweets godoc
// @Summary Load the starter catalog
// @Tags seed
// @Produce json
// @Success 200 {object} SeedSweetsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/sweets [get]
func (h *SeedHandler) SeedSweets(c echo.Context) error {
	count, err := h.catalogService.SeedSweets(c.Request().Context(), seed.Sweets())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"message": "failed to seed sweets",
		})
	}
	return c.JSON(http.StatusOK, SeedSweetsResponse{
		Message: "sweets seeded successfully",
		Count:   count,
	})
}

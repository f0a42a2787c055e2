package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
)

type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List returns the product catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /api/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.List())
}

// Get returns a single product.
//
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrProductNotFound
	}

	p, err := h.service.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Root answers the plain-text banner.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "API is running...")
}

// Ping answers GET /api/test.
func Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message":   "Backend is working!",
		"timestamp": time.Now().UTC(),
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the product list.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler creates CatalogHandler instance.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.Products())
}

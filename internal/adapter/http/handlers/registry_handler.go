package handlers

import (
	"net/http"

	"balanca_xpto/internal/usecase"
	"balanca_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// RegistryHandler serves the reference catalogs the weighbridge UI joins
// against. Read-only.

type RegistryHandler struct {
	usecase usecase.IRegistryUseCase
}

func NewRegistryHandler(uc usecase.IRegistryUseCase) *RegistryHandler {
	return &RegistryHandler{usecase: uc}
}

func (h *RegistryHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *RegistryHandler) ListVendors(c *gin.Context) {
	vendors, err := h.usecase.ListVendors(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (h *RegistryHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.usecase.ListVehicles(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

package adminapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/catalogd/catalogd/internal/catalog"
	"github.com/catalogd/catalogd/internal/webserver"
)

type listProductsRequest struct {
	Page  int `query:"page" validate:"omitempty,gte=1"`
	Limit int `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

type searchProductsRequest struct {
	Brand    string   `query:"brand"`
	Color    string   `query:"color"`
	MinPrice *float64 `query:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice *float64 `query:"maxPrice" validate:"omitempty,gte=0"`
}

func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/search", searchProducts)
	webserver.ApiGET("/products/:sku", getProduct)
	webserver.ApiDELETE("/products/clear", clearProducts)
}

func listProducts(c echo.Context) error {
	req := listProductsRequest{Page: 1, Limit: 10}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pagination parameters").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Limit == 0 {
		req.Limit = 10
	}

	page, err := catalog.NewService(GetDB(c)).List(c.Request().Context(), req.Page, req.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to query products").SetInternal(err)
	}
	return c.JSON(http.StatusOK, page)
}

func searchProducts(c echo.Context) error {
	var req searchProductsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid search parameters").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	products, err := catalog.NewService(GetDB(c)).Search(c.Request().Context(), catalog.SearchFilter{
		Brand:    req.Brand,
		Color:    req.Color,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to search products").SetInternal(err)
	}
	return c.JSON(http.StatusOK, products)
}

func getProduct(c echo.Context) error {
	sku := c.Param("sku")
	product, err := catalog.NewService(GetDB(c)).GetBySku(c.Request().Context(), sku)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	} else if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to query product").SetInternal(err)
	}
	return c.JSON(http.StatusOK, product)
}

func clearProducts(c echo.Context) error {
	deleted, err := catalog.NewService(GetDB(c)).ClearAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear products").SetInternal(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Deleted %d products from database", deleted),
	})
}

package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/catalogd/catalogd/internal/webserver"
)

// InitRouter registers every admin API route on the active web server.
func InitRouter() {
	webserver.ApiGET("/", index)
	registerUploadRoutes()
	registerProductRoutes()
}

func index(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Product Management API is running"})
}

// GetDB returns the request-scoped database handle injected by the web
// server middleware.
func GetDB(c echo.Context) *gorm.DB {
	return c.Get(webserver.DBContextKey).(*gorm.DB)
}

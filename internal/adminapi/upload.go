package adminapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/catalogd/catalogd/internal/catalog"
	"github.com/catalogd/catalogd/internal/webserver"
)

func registerUploadRoutes() {
	webserver.ApiPOST("/upload", uploadCSV)
}

// uploadCSV runs one multipart CSV file through the ingestion pipeline.
// Row-level validation problems come back inside the 200 summary; only an
// unparseable file or a storage failure aborts the upload.
func uploadCSV(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing upload file").SetInternal(err)
	}
	if !strings.HasSuffix(file.Filename, ".csv") {
		return echo.NewHTTPError(http.StatusBadRequest, "File must be a CSV")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Unable to read upload file").SetInternal(err)
	}
	defer src.Close()

	summary, err := catalog.NewImporter(GetDB(c)).ImportCSV(c.Request().Context(), src)
	if err != nil {
		var ferr *catalog.FormatError
		if errors.As(err, &ferr) {
			return echo.NewHTTPError(http.StatusBadRequest, ferr.Error())
		}
		zap.L().Error("csv import failed", zap.String("filename", file.Filename), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError,
			"Error processing CSV file: "+err.Error()).SetInternal(err)
	}

	return c.JSON(http.StatusOK, summary)
}

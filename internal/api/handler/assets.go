package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// uploadRequest carries a base64-encoded binary payload. Magic-byte and
// size validation happens in the services.
type uploadRequest struct {
	Data        string `json:"data" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}

// assetCacheControl marks served blobs publicly cacheable for seven days.
const assetCacheControl = "public, max-age=604800"

// serveAsset writes a stored blob with its content type and cache headers.
func serveAsset(c echo.Context, asset *domain.Asset) error {
	c.Response().Header().Set("Cache-Control", assetCacheControl)
	return c.Blob(http.StatusOK, asset.ContentType, asset.Data)
}

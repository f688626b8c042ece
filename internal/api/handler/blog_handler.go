package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-cms/portfolio-api/internal/api/metrics"
	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// BlogHandler exposes blog CRUD, slug lookup and cover images.
type BlogHandler struct {
	blogs ports.BlogService
}

func NewBlogHandler(blogs ports.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

type blogRequest struct {
	Title      string   `json:"title" validate:"required,max=200"`
	Slug       string   `json:"slug" validate:"omitempty,max=250"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content" validate:"required"`
	CoverImage string   `json:"coverImage" validate:"omitempty,max=500"`
	Tags       []string `json:"tags"`
	Published  bool     `json:"published"`
}

func (r *blogRequest) toDomain() *domain.Blog {
	return &domain.Blog{
		Title:      r.Title,
		Slug:       r.Slug,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		CoverImage: r.CoverImage,
		Tags:       r.Tags,
		Published:  r.Published,
	}
}

// ListPublished returns only published posts; the admin list lives under
// /all.
func (h *BlogHandler) ListPublished(c echo.Context) error {
	blogs, err := h.blogs.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) ListAll(c echo.Context) error {
	blogs, err := h.blogs.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) GetBySlug(c echo.Context) error {
	blog, err := h.blogs.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) Create(c echo.Context) error {
	var req blogRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	blog, err := h.blogs.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, blog)
}

func (h *BlogHandler) Update(c echo.Context) error {
	var req blogRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	blog, err := h.blogs.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.blogs.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BlogHandler) UploadCover(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	blog, err := h.blogs.UploadCover(c.Request().Context(), c.Param("id"), req.Data, req.ContentType)
	if err != nil {
		return err
	}
	metrics.AssetUploadsTotal.WithLabelValues("blog_cover").Inc()
	return c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) GetCover(c echo.Context) error {
	asset, err := h.blogs.GetCover(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return serveAsset(c, asset)
}

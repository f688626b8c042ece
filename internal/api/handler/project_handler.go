package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-cms/portfolio-api/internal/api/metrics"
	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// ProjectHandler exposes project CRUD and thumbnail upload/serving.
type ProjectHandler struct {
	projects ports.ProjectService
}

func NewProjectHandler(projects ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type projectRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"imageUrl" validate:"omitempty,max=500"`
	ProjectURL   string   `json:"projectUrl" validate:"omitempty,max=500"`
	GithubURL    string   `json:"githubUrl" validate:"omitempty,max=500"`
	Featured     bool     `json:"featured"`
	SortOrder    int      `json:"sortOrder"`
}

func (r *projectRequest) toDomain() *domain.Project {
	return &domain.Project{
		Title:        r.Title,
		Description:  r.Description,
		Technologies: r.Technologies,
		ImageURL:     r.ImageURL,
		ProjectURL:   r.ProjectURL,
		GithubURL:    r.GithubURL,
		Featured:     r.Featured,
		SortOrder:    r.SortOrder,
	}
}

func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projects.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) ListFeatured(c echo.Context) error {
	projects, err := h.projects.ListFeatured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.projects.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.projects.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.projects.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projects.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProjectHandler) UploadThumbnail(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.projects.UploadThumbnail(c.Request().Context(), c.Param("id"), req.Data, req.ContentType)
	if err != nil {
		return err
	}
	metrics.AssetUploadsTotal.WithLabelValues("project_thumbnail").Inc()
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) GetThumbnail(c echo.Context) error {
	asset, err := h.projects.GetThumbnail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return serveAsset(c, asset)
}

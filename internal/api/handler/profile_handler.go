package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-cms/portfolio-api/internal/api/metrics"
	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// ProfileHandler exposes the owner profile, avatar and resume.
type ProfileHandler struct {
	profile ports.ProfileService
}

func NewProfileHandler(profile ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

type socialLinkRequest struct {
	Platform  string `json:"platform" validate:"required,max=50"`
	URL       string `json:"url" validate:"required,max=500"`
	Icon      string `json:"icon" validate:"omitempty,max=50"`
	SortOrder int    `json:"sortOrder"`
}

type profileRequest struct {
	FullName    string              `json:"fullName" validate:"required,max=100"`
	Title       string              `json:"title" validate:"required,max=100"`
	Bio         string              `json:"bio"`
	Email       string              `json:"email" validate:"required,email,max=100"`
	Phone       string              `json:"phone" validate:"omitempty,max=20"`
	Location    string              `json:"location" validate:"omitempty,max=100"`
	AvatarURL   string              `json:"avatarUrl" validate:"omitempty,max=500"`
	ResumeURL   string              `json:"resumeUrl" validate:"omitempty,max=500"`
	SocialLinks []socialLinkRequest `json:"socialLinks" validate:"dive"`
}

func (r *profileRequest) toDomain() *domain.Profile {
	p := &domain.Profile{
		FullName:  r.FullName,
		Title:     r.Title,
		Bio:       r.Bio,
		Email:     r.Email,
		Phone:     r.Phone,
		Location:  r.Location,
		AvatarURL: r.AvatarURL,
		ResumeURL: r.ResumeURL,
	}
	for _, l := range r.SocialLinks {
		p.SocialLinks = append(p.SocialLinks, domain.SocialLink{
			Platform:  l.Platform,
			URL:       l.URL,
			Icon:      l.Icon,
			SortOrder: l.SortOrder,
		})
	}
	return p
}

func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.profile.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Update(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profile.Update(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profile.UploadAvatar(c.Request().Context(), c.Param("profileId"), req.Data, req.ContentType)
	if err != nil {
		return err
	}
	metrics.AssetUploadsTotal.WithLabelValues("avatar").Inc()
	return c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UploadResume(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profile.UploadResume(c.Request().Context(), c.Param("profileId"), req.Data, req.ContentType)
	if err != nil {
		return err
	}
	metrics.AssetUploadsTotal.WithLabelValues("resume").Inc()
	return c.JSON(http.StatusOK, profile)
}

// GetResume serves the stored PDF inline with public cache headers.
func (h *ProfileHandler) GetResume(c echo.Context) error {
	asset, err := h.profile.GetResume(c.Request().Context())
	if err != nil {
		return err
	}
	c.Response().Header().Set("Cache-Control", assetCacheControl)
	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="resume.pdf"`)
	return c.Blob(http.StatusOK, asset.ContentType, asset.Data)
}

func (h *ProfileHandler) GetAvatar(c echo.Context) error {
	asset, err := h.profile.GetAvatar(c.Request().Context(), c.Param("profileId"))
	if err != nil {
		return err
	}
	return serveAsset(c, asset)
}

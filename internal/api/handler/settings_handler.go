package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// SettingsHandler exposes the single site-settings row.
type SettingsHandler struct {
	settings ports.SettingsService
}

func NewSettingsHandler(settings ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type settingsRequest struct {
	AvatarSize        string `json:"avatarSize" validate:"omitempty,max=20"`
	AccentColor       string `json:"accentColor" validate:"omitempty,hexcolor"`
	FontFamily        string `json:"fontFamily" validate:"omitempty,max=100"`
	HeroVisible       bool   `json:"heroVisible"`
	AboutVisible      bool   `json:"aboutVisible"`
	SkillsVisible     bool   `json:"skillsVisible"`
	ExperienceVisible bool   `json:"experienceVisible"`
	ProjectsVisible   bool   `json:"projectsVisible"`
	ContactVisible    bool   `json:"contactVisible"`
}

func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	settings, err := h.settings.Update(c.Request().Context(), &domain.SiteSettings{
		AvatarSize:        req.AvatarSize,
		AccentColor:       req.AccentColor,
		FontFamily:        req.FontFamily,
		HeroVisible:       req.HeroVisible,
		AboutVisible:      req.AboutVisible,
		SkillsVisible:     req.SkillsVisible,
		ExperienceVisible: req.ExperienceVisible,
		ProjectsVisible:   req.ProjectsVisible,
		ContactVisible:    req.ContactVisible,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

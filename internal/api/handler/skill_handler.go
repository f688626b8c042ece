package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// SkillHandler exposes skill CRUD.
type SkillHandler struct {
	skills ports.SkillService
}

func NewSkillHandler(skills ports.SkillService) *SkillHandler {
	return &SkillHandler{skills: skills}
}

type skillRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Icon        string `json:"icon" validate:"max=100"`
	Category    string `json:"category" validate:"required,max=50"`
	Proficiency int    `json:"proficiency" validate:"gte=0,lte=100"`
	SortOrder   int    `json:"sortOrder"`
}

func (r *skillRequest) toDomain() *domain.Skill {
	return &domain.Skill{
		Name:        r.Name,
		Icon:        r.Icon,
		Category:    r.Category,
		Proficiency: r.Proficiency,
		SortOrder:   r.SortOrder,
	}
}

func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.skills.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) ListByCategory(c echo.Context) error {
	skills, err := h.skills.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) Get(c echo.Context) error {
	skill, err := h.skills.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) Create(c echo.Context) error {
	var req skillRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	skill, err := h.skills.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, skill)
}

func (h *SkillHandler) Update(c echo.Context) error {
	var req skillRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	skill, err := h.skills.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) Delete(c echo.Context) error {
	if err := h.skills.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

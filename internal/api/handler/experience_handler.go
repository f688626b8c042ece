package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// ExperienceHandler exposes work-history CRUD.
type ExperienceHandler struct {
	experiences ports.ExperienceService
}

func NewExperienceHandler(experiences ports.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experiences: experiences}
}

// Dates arrive as "2006-01-02"; an empty endDate means a current position.
type experienceRequest struct {
	Company      string   `json:"company" validate:"required,max=100"`
	Position     string   `json:"position" validate:"required,max=100"`
	StartDate    string   `json:"startDate" validate:"required"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	CompanyURL   string   `json:"companyUrl" validate:"omitempty,max=500"`
	Location     string   `json:"location" validate:"omitempty,max=100"`
	SortOrder    int      `json:"sortOrder"`
}

const dateLayout = "2006-01-02"

func (r *experienceRequest) toDomain() (*domain.Experience, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return nil, domain.NewValidationError("startDate must be formatted as YYYY-MM-DD")
	}
	exp := &domain.Experience{
		Company:      r.Company,
		Position:     r.Position,
		StartDate:    start,
		Description:  r.Description,
		Technologies: r.Technologies,
		CompanyURL:   r.CompanyURL,
		Location:     r.Location,
		SortOrder:    r.SortOrder,
	}
	if r.EndDate != "" {
		end, err := time.Parse(dateLayout, r.EndDate)
		if err != nil {
			return nil, domain.NewValidationError("endDate must be formatted as YYYY-MM-DD")
		}
		exp.EndDate = &end
	}
	return exp, nil
}

func (h *ExperienceHandler) List(c echo.Context) error {
	experiences, err := h.experiences.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experiences)
}

func (h *ExperienceHandler) ListCurrent(c echo.Context) error {
	experiences, err := h.experiences.ListCurrent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experiences)
}

func (h *ExperienceHandler) Get(c echo.Context) error {
	exp, err := h.experiences.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, exp)
}

func (h *ExperienceHandler) Create(c echo.Context) error {
	var req experienceRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	exp, err := req.toDomain()
	if err != nil {
		return err
	}

	created, err := h.experiences.Create(c.Request().Context(), exp)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *ExperienceHandler) Update(c echo.Context) error {
	var req experienceRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	exp, err := req.toDomain()
	if err != nil {
		return err
	}

	updated, err := h.experiences.Update(c.Request().Context(), c.Param("id"), exp)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *ExperienceHandler) Delete(c echo.Context) error {
	if err := h.experiences.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

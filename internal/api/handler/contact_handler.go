package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-cms/portfolio-api/internal/api/metrics"
	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// ContactHandler exposes the public contact form and the admin inbox.
type ContactHandler struct {
	contacts ports.ContactService
}

func NewContactHandler(contacts ports.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=100"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required"`
}

// Submit accepts a contact-form submission. Duplicates inside the dedup
// window still return 201; they are simply not persisted twice.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact := &domain.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	created, err := h.contacts.Submit(c.Request().Context(), contact)
	if err != nil {
		return err
	}

	result := "stored"
	if created.ID == "" {
		result = "duplicate"
	}
	metrics.ContactsSubmittedTotal.WithLabelValues(result).Inc()
	return c.JSON(http.StatusCreated, created)
}

func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.contacts.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) ListUnread(c echo.Context) error {
	contacts, err := h.contacts.ListUnread(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) Get(c echo.Context) error {
	contact, err := h.contacts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) MarkRead(c echo.Context) error {
	contact, err := h.contacts.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.contacts.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-cms/portfolio-api/internal/api/metrics"
	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// AuthHandler exposes login and the self-service password change.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type userResponse struct {
	ID                     string `json:"id"`
	Username               string `json:"username"`
	Role                   string `json:"role"`
	RequiresPasswordChange bool   `json:"requiresPasswordChange"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
	User      userResponse `json:"user"`
}

type changePasswordResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                     u.ID,
		Username:               u.Username,
		Role:                   u.Role,
		RequiresPasswordChange: u.RequiresPasswordChange,
	}
}

// Login exchanges credentials for a bearer token. The failure body never
// distinguishes unknown username from wrong password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		return c.String(http.StatusBadRequest, "username and password are required")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.String(http.StatusUnauthorized, "Invalid username or password")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		ExpiresIn: h.authService.TokenTTLSeconds(),
		User:      toUserResponse(user),
	})
}

// ChangePassword rotates the authenticated principal's password.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.CurrentPassword) == "" ||
		strings.TrimSpace(req.NewPassword) == "" ||
		strings.TrimSpace(req.ConfirmPassword) == "" {
		return c.String(http.StatusBadRequest, "all password fields are required")
	}
	if req.NewPassword != req.ConfirmPassword {
		return c.String(http.StatusBadRequest, "New password and confirmation do not match")
	}

	user, err := h.authService.ChangePassword(c.Request().Context(), principal.Username, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.String(http.StatusUnauthorized, "Current password is incorrect")
		case errors.Is(err, domain.ErrPasswordUnchanged):
			return c.String(http.StatusBadRequest, "New password must be different from current password")
		}
		return err
	}

	metrics.PasswordChangesTotal.Inc()
	return c.JSON(http.StatusOK, changePasswordResponse{
		Message: "Password changed successfully",
		User:    toUserResponse(user),
	})
}

package handlers

import (
	"time"

	"streamhub-backend/internal/services"
	"streamhub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service    *services.AuthService
	cookieName string
	logger     *logrus.Logger
}

func NewAuthHandler(service *services.AuthService, cookieName string, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service:    service,
		cookieName: cookieName,
		logger:     logger,
	}
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
}

// RegisterUser godoc
// @Summary Register a user account
// @Description Create a user with a generated avatar and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body services.RegisterInput true "Registration payload"
// @Success 201 {object} utils.StandardResponse "User registered successfully"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Router /auth/register [post]
func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, token, violations, err := h.service.RegisterUser(c.Context(), input)
	if err != nil {
		h.logger.WithError(err).Error("Failed to register user")
		return respondError(c, err, "User not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	h.setSessionCookie(c, token)
	return utils.SuccessResponse(c, fiber.StatusCreated, "User registered successfully", user)
}

// LoginUser godoc
// @Summary Log a user in
// @Description Verify credentials and start a session. Failures never reveal whether the account exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body services.LoginInput true "Login payload"
// @Success 200 {object} utils.StandardResponse "Logged in successfully"
// @Failure 400 {object} utils.StandardResponse "Wrong Credentials"
// @Router /auth/login [post]
func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, token, violations, err := h.service.LoginUser(c.Context(), input)
	if err != nil {
		return respondError(c, err, "User not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	h.setSessionCookie(c, token)
	return utils.SuccessResponse(c, fiber.StatusOK, "Logged in successfully", user)
}

// Logout godoc
// @Summary End the current session
// @Tags auth
// @Produce json
// @Success 200 {object} utils.StandardResponse "Logged out successfully"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)
	return utils.SuccessResponse(c, fiber.StatusOK, "Logged out successfully", nil)
}

// RegisterAdmin godoc
// @Summary Register an admin account
// @Tags admin-auth
// @Accept json
// @Produce json
// @Param credentials body services.RegisterInput true "Registration payload"
// @Success 201 {object} utils.StandardResponse "Admin registered successfully"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Router /admin/auth/register [post]
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	admin, token, violations, err := h.service.RegisterAdmin(c.Context(), input)
	if err != nil {
		h.logger.WithError(err).Error("Failed to register admin")
		return respondError(c, err, "Admin not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	h.setSessionCookie(c, token)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Admin registered successfully", admin)
}

// LoginAdmin godoc
// @Summary Log an admin in
// @Tags admin-auth
// @Accept json
// @Produce json
// @Param credentials body services.LoginInput true "Login payload"
// @Success 200 {object} utils.StandardResponse "Logged in successfully"
// @Failure 400 {object} utils.StandardResponse "Wrong Credentials"
// @Router /admin/auth/login [post]
func (h *AuthHandler) LoginAdmin(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	admin, token, violations, err := h.service.LoginAdmin(c.Context(), input)
	if err != nil {
		return respondError(c, err, "Admin not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	h.setSessionCookie(c, token)
	return utils.SuccessResponse(c, fiber.StatusOK, "Logged in successfully", admin)
}

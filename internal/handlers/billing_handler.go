package handlers

import (
	"errors"

	"streamhub-backend/internal/middleware"
	"streamhub-backend/internal/services"
	"streamhub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type BillingHandler struct {
	service *services.BillingService
	logger  *logrus.Logger
}

func NewBillingHandler(service *services.BillingService, logger *logrus.Logger) *BillingHandler {
	return &BillingHandler{
		service: service,
		logger:  logger,
	}
}

func authenticatedUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	claims := middleware.ClaimsFromCtx(c)
	if claims == nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetAllPlans godoc
// @Summary List subscription plans
// @Tags billing
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of plans"
// @Failure 404 {object} utils.StandardResponse "No plans found"
// @Router /plans [get]
func (h *BillingHandler) GetAllPlans(c *fiber.Ctx) error {
	plans, err := h.service.ListPlans(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list plans")
		return respondError(c, err, "No plans found")
	}
	if len(plans) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No plans found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Plans retrieved successfully", plans)
}

// CreatePlan godoc
// @Summary Create a subscription plan
// @Description Register the price with the billing provider, then store the plan
// @Tags billing
// @Accept json
// @Produce json
// @Param plan body services.PlanInput true "Plan payload"
// @Success 201 {object} utils.StandardResponse "Plan created successfully"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Router /plans [post]
func (h *BillingHandler) CreatePlan(c *fiber.Ctx) error {
	var input services.PlanInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	plan, violations, err := h.service.CreatePlan(c.Context(), input)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create plan")
		return respondError(c, err, "Plan not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Plan created successfully", plan)
}

// DeletePlan godoc
// @Summary Delete a subscription plan
// @Tags billing
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.StandardResponse "Plan deleted successfully"
// @Failure 404 {object} utils.StandardResponse "Plan not found"
// @Router /plans/{id} [delete]
func (h *BillingHandler) DeletePlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid plan ID")
	}

	if err := h.service.DeletePlan(c.Context(), id); err != nil {
		h.logger.WithError(err).WithField("planId", id).Error("Failed to delete plan")
		return respondError(c, err, "Plan not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Plan deleted successfully", nil)
}

// CreateCheckoutSession godoc
// @Summary Start a checkout for a plan
// @Description Returns the provider-hosted payment page URL
// @Tags billing
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} utils.StandardResponse "Checkout session URL"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Failure 404 {object} utils.StandardResponse "Plan not found"
// @Router /billing/checkout/{planId} [post]
func (h *BillingHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	planID, err := uuid.Parse(c.Params("planId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid plan ID")
	}

	url, err := h.service.CreateCheckoutSession(c.Context(), userID, planID)
	if err != nil {
		h.logger.WithError(err).WithField("planId", planID).Error("Failed to create checkout session")
		return respondError(c, err, "Plan not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Checkout session created", fiber.Map{"url": url})
}

// HandleWebhook godoc
// @Summary Billing provider webhook
// @Description Verifies the signature over the raw payload and applies the event
// @Tags billing
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Event processed"
// @Failure 400 {object} utils.StandardResponse "Invalid signature"
// @Router /billing/webhook [post]
func (h *BillingHandler) HandleWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	signature := c.Get("Stripe-Signature")

	if err := h.service.HandleWebhook(c.Context(), payload, signature); err != nil {
		if errors.Is(err, services.ErrWebhookSignature) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid webhook signature")
		}
		h.logger.WithError(err).Error("Failed to process webhook")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Event processed", nil)
}

// GetSubscription godoc
// @Summary Get the current user's subscription
// @Tags billing
// @Produce json
// @Success 200 {object} utils.StandardResponse "Subscription with plan"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Failure 404 {object} utils.StandardResponse "Subscription not found"
// @Router /billing/subscription [get]
func (h *BillingHandler) GetSubscription(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	subscription, err := h.service.GetSubscription(c.Context(), userID)
	if err != nil {
		return respondError(c, err, "Subscription not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Subscription retrieved successfully", subscription)
}

// UpdateSubscription godoc
// @Summary Switch the current user's subscription to another plan
// @Tags billing
// @Produce json
// @Param planId path string true "New plan ID"
// @Success 200 {object} utils.StandardResponse "Subscription updated successfully"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Failure 404 {object} utils.StandardResponse "Subscription not found"
// @Router /billing/subscription/{planId} [put]
func (h *BillingHandler) UpdateSubscription(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	planID, err := uuid.Parse(c.Params("planId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid plan ID")
	}

	subscription, err := h.service.UpdateSubscription(c.Context(), userID, planID)
	if err != nil {
		h.logger.WithError(err).WithField("userId", userID).Error("Failed to update subscription")
		return respondError(c, err, "Subscription not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Subscription updated successfully", subscription)
}

// CancelSubscription godoc
// @Summary Cancel the current user's subscription at period end
// @Tags billing
// @Produce json
// @Success 200 {object} utils.StandardResponse "Subscription canceled successfully"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Failure 404 {object} utils.StandardResponse "Subscription not found"
// @Router /billing/subscription [delete]
func (h *BillingHandler) CancelSubscription(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := h.service.CancelSubscription(c.Context(), userID); err != nil {
		h.logger.WithError(err).WithField("userId", userID).Error("Failed to cancel subscription")
		return respondError(c, err, "Subscription not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Subscription canceled successfully", nil)
}

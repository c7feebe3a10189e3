package services

import (
	"context"
	"errors"
	"math"

	"streamhub-backend/internal/models"
	"streamhub-backend/internal/repository"
	"streamhub-backend/internal/validators"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PlanInput struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Interval string  `json:"interval" validate:"required,oneof=day week month year"`
}

type BillingService struct {
	plans         repository.PlanRepository
	subscriptions repository.SubscriptionRepository
	users         repository.UserRepository
	gateway       PaymentGateway
	clientURL     string
	logger        *logrus.Logger
}

func NewBillingService(
	plans repository.PlanRepository,
	subscriptions repository.SubscriptionRepository,
	users repository.UserRepository,
	gateway PaymentGateway,
	clientURL string,
	logger *logrus.Logger,
) *BillingService {
	return &BillingService{
		plans:         plans,
		subscriptions: subscriptions,
		users:         users,
		gateway:       gateway,
		clientURL:     clientURL,
		logger:        logger,
	}
}

// CreatePlan registers the price at the billing provider first, then
// mirrors it locally. Prices are decimal currency; the provider wants
// integer cents.
func (s *BillingService) CreatePlan(ctx context.Context, input PlanInput) (*models.Plan, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := validators.Check(input)
	if !violations.Empty() {
		return nil, violations, nil
	}

	amountCents := int64(math.Round(input.Price * 100))
	stripePlanID, err := s.gateway.CreatePlan(ctx, input.Name, amountCents, input.Interval)
	if err != nil {
		return nil, nil, err
	}

	plan := &models.Plan{
		StripePlanID: stripePlanID,
		Name:         input.Name,
		Price:        input.Price,
		Interval:     input.Interval,
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"planId":       plan.ID,
		"stripePlanId": plan.StripePlanID,
	}).Info("Plan created")

	return plan, nil, nil
}

// DeletePlan removes the provider price first so a failing provider call
// never leaves an orphaned local plan pointing at a live price.
func (s *BillingService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.gateway.DeletePlan(ctx, plan.StripePlanID); err != nil {
		return err
	}
	if err := s.plans.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("planId", id).Info("Plan deleted")
	return nil
}

func (s *BillingService) ListPlans(ctx context.Context) ([]models.Plan, error) {
	return s.plans.FindAll(ctx)
}

// CreateCheckoutSession starts a provider-hosted payment flow for the
// given plan. The user id rides along as the client reference, which the
// webhook later uses to attribute the completed payment.
func (s *BillingService) CreateCheckoutSession(ctx context.Context, userID, planID uuid.UUID) (string, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return "", err
	}

	url, err := s.gateway.CreateCheckoutSession(
		ctx,
		plan.StripePlanID,
		userID.String(),
		s.clientURL+"/sign-in",
		s.clientURL+"/",
	)
	if err != nil {
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"userId": userID,
		"planId": planID,
	}).Info("Checkout session created")

	return url, nil
}

// HandleWebhook processes a verified provider notification. Events this
// service does not act on are acknowledged silently, and so is a completed
// checkout whose client reference matches no known user: the provider will
// retry on anything but success, so an unattributable payment must not
// turn into an endless redelivery loop.
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}

	if event.Type != "checkout.session.completed" || event.Checkout == nil {
		return nil
	}

	info, err := s.gateway.GetSubscription(ctx, event.Checkout.SubscriptionID)
	if err != nil {
		return err
	}

	plan, err := s.plans.FindByStripePlanID(ctx, info.PlanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.WithField("stripePlanId", info.PlanID).
				Warn("Webhook references unknown plan, ignoring")
			return nil
		}
		return err
	}

	userID, err := uuid.Parse(event.Checkout.ClientReferenceID)
	if err != nil {
		s.logger.WithField("clientReferenceId", event.Checkout.ClientReferenceID).
			Warn("Webhook client reference is not a user id, ignoring")
		return nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.WithField("userId", userID).
				Warn("Webhook references unknown user, ignoring")
			return nil
		}
		return err
	}

	subscription := &models.Subscription{
		UserID:                   user.ID,
		PlanID:                   plan.ID,
		StripeSubscriptionID:     info.ID,
		StripeSubscriptionItemID: info.ItemID,
		Status:                   models.SubscriptionActive,
		StartDate:                info.PeriodStart,
		EndDate:                  info.PeriodEnd,
	}
	if err := s.subscriptions.Create(ctx, subscription); err != nil {
		return err
	}

	user.IsSubscribed = true
	user.SubscriptionID = &subscription.ID
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"userId":         user.ID,
		"subscriptionId": subscription.ID,
		"planId":         plan.ID,
	}).Info("Subscription activated")

	return nil
}

// UpdateSubscription moves the user's subscription onto another plan, at
// the provider first and then locally.
func (s *BillingService) UpdateSubscription(ctx context.Context, userID, planID uuid.UUID) (*models.Subscription, error) {
	subscription, err := s.subscriptions.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.UpdateSubscriptionPrice(ctx, subscription.StripeSubscriptionItemID, plan.StripePlanID); err != nil {
		return nil, err
	}

	subscription.PlanID = plan.ID
	subscription.Plan = nil
	if err := s.subscriptions.Update(ctx, subscription); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"userId": userID,
		"planId": planID,
	}).Info("Subscription plan changed")

	return s.subscriptions.FindByUserID(ctx, userID)
}

// CancelSubscription schedules the provider-side cancellation for the end
// of the current period and marks the local record canceled right away.
func (s *BillingService) CancelSubscription(ctx context.Context, userID uuid.UUID) error {
	subscription, err := s.subscriptions.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.gateway.CancelAtPeriodEnd(ctx, subscription.StripeSubscriptionID); err != nil {
		return err
	}

	subscription.Status = models.SubscriptionCanceled
	subscription.Plan = nil
	if err := s.subscriptions.Update(ctx, subscription); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsSubscribed = false
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"userId":         userID,
		"subscriptionId": subscription.ID,
	}).Info("Subscription canceled")

	return nil
}

func (s *BillingService) GetSubscription(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	return s.subscriptions.FindByUserID(ctx, userID)
}

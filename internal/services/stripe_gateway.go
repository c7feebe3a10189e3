package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"streamhub-backend/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeGateway implements PaymentGateway against the Stripe API.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	logger        *logrus.Logger
}

func NewStripeGateway(cfg *config.StripeConfig, logger *logrus.Logger) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		logger:        logger,
	}
}

func (g *StripeGateway) CreatePlan(ctx context.Context, name string, amountCents int64, interval string) (string, error) {
	params := &stripe.PlanParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Interval: stripe.String(interval),
		Product: &stripe.PlanProductParams{
			Name: stripe.String(name),
		},
	}
	params.Context = ctx

	plan, err := g.api.Plans.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe plan: %w", err)
	}

	g.logger.WithFields(logrus.Fields{
		"stripePlanId": plan.ID,
		"name":         name,
	}).Info("Stripe plan created")

	return plan.ID, nil
}

func (g *StripeGateway) DeletePlan(ctx context.Context, planID string) error {
	params := &stripe.PlanParams{}
	params.Context = ctx

	if _, err := g.api.Plans.Del(planID, params); err != nil {
		return fmt.Errorf("failed to delete stripe plan: %w", err)
	}
	return nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, priceID, clientReferenceID, successURL, cancelURL string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(successURL),
		CancelURL:         stripe.String(cancelURL),
		ClientReferenceID: stripe.String(clientReferenceID),
	}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return session.URL, nil
}

func (g *StripeGateway) GetSubscription(ctx context.Context, subscriptionID string) (*SubscriptionInfo, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := g.api.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve subscription: %w", err)
	}

	info := &SubscriptionInfo{
		ID:          sub.ID,
		PeriodStart: time.Unix(sub.CurrentPeriodStart, 0),
		PeriodEnd:   time.Unix(sub.CurrentPeriodEnd, 0),
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 {
		item := sub.Items.Data[0]
		info.ItemID = item.ID
		if item.Plan != nil {
			info.PlanID = item.Plan.ID
		}
	}
	return info, nil
}

func (g *StripeGateway) UpdateSubscriptionPrice(ctx context.Context, itemID, priceID string) error {
	params := &stripe.SubscriptionItemParams{
		Price: stripe.String(priceID),
	}
	params.Context = ctx

	if _, err := g.api.SubscriptionItems.Update(itemID, params); err != nil {
		return fmt.Errorf("failed to update subscription item: %w", err)
	}
	return nil
}

func (g *StripeGateway) CancelAtPeriodEnd(ctx context.Context, subscriptionID string) error {
	params := &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	}
	params.Context = ctx

	if _, err := g.api.Subscriptions.Update(subscriptionID, params); err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}
	return nil
}

// ParseWebhook verifies the signature over the raw payload and decodes the
// events this service reacts to. Other event types come back with a Type
// only, so callers can acknowledge and ignore them.
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		g.logger.WithError(err).Warn("Webhook signature verification failed")
		return nil, ErrWebhookSignature
	}

	parsed := &WebhookEvent{Type: string(event.Type)}

	if event.Type == "checkout.session.completed" {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session: %w", err)
		}

		checkout := &CheckoutCompleted{ClientReferenceID: session.ClientReferenceID}
		if session.Subscription != nil {
			checkout.SubscriptionID = session.Subscription.ID
		}
		parsed.Checkout = checkout
	}

	return parsed, nil
}

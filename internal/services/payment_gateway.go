package services

import (
	"context"
	"errors"
	"time"
)

// ErrWebhookSignature marks a webhook payload whose signature did not
// verify. Handlers reject these without touching any state.
var ErrWebhookSignature = errors.New("webhook signature verification failed")

// SubscriptionInfo is the provider-side view of one subscription.
type SubscriptionInfo struct {
	ID          string
	ItemID      string
	PlanID      string
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// CheckoutCompleted is emitted when a customer finishes paying. The
// reference carries the user id the session was created for.
type CheckoutCompleted struct {
	ClientReferenceID string
	SubscriptionID    string
}

// WebhookEvent is a verified, decoded provider notification. Checkout is
// nil for event types this service does not act on.
type WebhookEvent struct {
	Type     string
	Checkout *CheckoutCompleted
}

// PaymentGateway abstracts the billing provider so the service layer can be
// exercised against a fake.
type PaymentGateway interface {
	CreatePlan(ctx context.Context, name string, amountCents int64, interval string) (string, error)
	DeletePlan(ctx context.Context, planID string) error
	CreateCheckoutSession(ctx context.Context, priceID, clientReferenceID, successURL, cancelURL string) (string, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*SubscriptionInfo, error)
	UpdateSubscriptionPrice(ctx context.Context, itemID, priceID string) error
	CancelAtPeriodEnd(ctx context.Context, subscriptionID string) error
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

package services

import (
	"context"
	"testing"
	"time"

	"streamhub-backend/internal/models"
	"streamhub-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeGateway scripts provider responses and records the calls made.
type fakeGateway struct {
	createdPlans    []string
	planAmounts     []int64
	deletedPlans    []string
	checkoutURL     string
	checkoutCalls   []string
	subscription    *SubscriptionInfo
	priceUpdates    [][2]string
	canceled        []string
	webhookEvent    *WebhookEvent
	webhookErr      error
	webhookPayloads [][]byte
}

func (g *fakeGateway) CreatePlan(_ context.Context, name string, amountCents int64, _ string) (string, error) {
	g.createdPlans = append(g.createdPlans, name)
	g.planAmounts = append(g.planAmounts, amountCents)
	return "price_" + name, nil
}

func (g *fakeGateway) DeletePlan(_ context.Context, planID string) error {
	g.deletedPlans = append(g.deletedPlans, planID)
	return nil
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, priceID, clientReferenceID, _, _ string) (string, error) {
	g.checkoutCalls = append(g.checkoutCalls, priceID+"|"+clientReferenceID)
	return g.checkoutURL, nil
}

func (g *fakeGateway) GetSubscription(_ context.Context, _ string) (*SubscriptionInfo, error) {
	return g.subscription, nil
}

func (g *fakeGateway) UpdateSubscriptionPrice(_ context.Context, itemID, priceID string) error {
	g.priceUpdates = append(g.priceUpdates, [2]string{itemID, priceID})
	return nil
}

func (g *fakeGateway) CancelAtPeriodEnd(_ context.Context, subscriptionID string) error {
	g.canceled = append(g.canceled, subscriptionID)
	return nil
}

func (g *fakeGateway) ParseWebhook(payload []byte, _ string) (*WebhookEvent, error) {
	g.webhookPayloads = append(g.webhookPayloads, payload)
	if g.webhookErr != nil {
		return nil, g.webhookErr
	}
	return g.webhookEvent, nil
}

type billingFixture struct {
	service *BillingService
	gateway *fakeGateway
	users   repository.UserRepository
	subs    repository.SubscriptionRepository
	plans   repository.PlanRepository
	db      *gorm.DB
}

func newBillingFixture(t *testing.T) *billingFixture {
	db := newTestDB(t)
	gateway := &fakeGateway{checkoutURL: "https://checkout.test/session"}
	plans := repository.NewPlanRepository(db, testTimeout)
	subs := repository.NewSubscriptionRepository(db, testTimeout)
	users := repository.NewUserRepository(db, testTimeout)

	return &billingFixture{
		service: NewBillingService(plans, subs, users, gateway, "http://localhost:5173", newTestLogger()),
		gateway: gateway,
		users:   users,
		subs:    subs,
		plans:   plans,
		db:      db,
	}
}

func (f *billingFixture) seedUser(t *testing.T) *models.User {
	t.Helper()
	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func (f *billingFixture) seedPlan(t *testing.T, name, stripeID string) *models.Plan {
	t.Helper()
	plan := &models.Plan{StripePlanID: stripeID, Name: name, Price: 9.99, Interval: "month"}
	require.NoError(t, f.plans.Create(context.Background(), plan))
	return plan
}

func TestCreatePlanConvertsToCents(t *testing.T) {
	f := newBillingFixture(t)

	plan, violations, err := f.service.CreatePlan(context.Background(), PlanInput{
		Name:     "Premium",
		Price:    9.99,
		Interval: "month",
	})
	require.NoError(t, err)
	require.True(t, violations.Empty())

	assert.Equal(t, "price_Premium", plan.StripePlanID)
	require.Len(t, f.gateway.planAmounts, 1)
	assert.Equal(t, int64(999), f.gateway.planAmounts[0])
}

func TestCreatePlanRejectsBadInterval(t *testing.T) {
	f := newBillingFixture(t)

	_, violations, err := f.service.CreatePlan(context.Background(), PlanInput{
		Name:     "Premium",
		Price:    9.99,
		Interval: "fortnight",
	})
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "interval", violations[0].Param)
	assert.Empty(t, f.gateway.createdPlans)
}

func TestDeletePlanProviderFirst(t *testing.T) {
	f := newBillingFixture(t)
	plan := f.seedPlan(t, "Premium", "price_123")

	require.NoError(t, f.service.DeletePlan(context.Background(), plan.ID))
	assert.Equal(t, []string{"price_123"}, f.gateway.deletedPlans)

	_, err := f.plans.FindByID(context.Background(), plan.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCheckoutSessionCarriesUserReference(t *testing.T) {
	f := newBillingFixture(t)
	user := f.seedUser(t)
	plan := f.seedPlan(t, "Premium", "price_123")

	url, err := f.service.CreateCheckoutSession(context.Background(), user.ID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.test/session", url)
	require.Len(t, f.gateway.checkoutCalls, 1)
	assert.Equal(t, "price_123|"+user.ID.String(), f.gateway.checkoutCalls[0])
}

func TestWebhookBadSignature(t *testing.T) {
	f := newBillingFixture(t)
	f.gateway.webhookErr = ErrWebhookSignature

	err := f.service.HandleWebhook(context.Background(), []byte("{}"), "bad")
	assert.ErrorIs(t, err, ErrWebhookSignature)
}

func TestWebhookActivatesSubscription(t *testing.T) {
	f := newBillingFixture(t)
	user := f.seedUser(t)
	plan := f.seedPlan(t, "Premium", "price_123")

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	f.gateway.subscription = &SubscriptionInfo{
		ID:          "sub_1",
		ItemID:      "si_1",
		PlanID:      "price_123",
		PeriodStart: start,
		PeriodEnd:   end,
	}
	f.gateway.webhookEvent = &WebhookEvent{
		Type: "checkout.session.completed",
		Checkout: &CheckoutCompleted{
			ClientReferenceID: user.ID.String(),
			SubscriptionID:    "sub_1",
		},
	}

	require.NoError(t, f.service.HandleWebhook(context.Background(), []byte("{}"), "sig"))

	subscription, err := f.subs.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionActive, subscription.Status)
	assert.Equal(t, plan.ID, subscription.PlanID)
	assert.Equal(t, "sub_1", subscription.StripeSubscriptionID)
	assert.True(t, subscription.StartDate.Equal(start))
	assert.True(t, subscription.EndDate.Equal(end))

	reloaded, err := f.users.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsSubscribed)
	require.NotNil(t, reloaded.SubscriptionID)
	assert.Equal(t, subscription.ID, *reloaded.SubscriptionID)
}

func TestWebhookUnknownUserAcknowledged(t *testing.T) {
	f := newBillingFixture(t)
	f.seedPlan(t, "Premium", "price_123")

	f.gateway.subscription = &SubscriptionInfo{ID: "sub_1", ItemID: "si_1", PlanID: "price_123"}
	f.gateway.webhookEvent = &WebhookEvent{
		Type: "checkout.session.completed",
		Checkout: &CheckoutCompleted{
			ClientReferenceID: uuid.New().String(),
			SubscriptionID:    "sub_1",
		},
	}

	// Unattributable payment: acknowledged without creating anything, so
	// the provider stops retrying.
	require.NoError(t, f.service.HandleWebhook(context.Background(), []byte("{}"), "sig"))

	var count int64
	require.NoError(t, f.db.Model(&models.Subscription{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestWebhookIgnoresOtherEvents(t *testing.T) {
	f := newBillingFixture(t)
	f.gateway.webhookEvent = &WebhookEvent{Type: "invoice.paid"}

	require.NoError(t, f.service.HandleWebhook(context.Background(), []byte("{}"), "sig"))

	var count int64
	require.NoError(t, f.db.Model(&models.Subscription{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateSubscriptionSwitchesPlan(t *testing.T) {
	f := newBillingFixture(t)
	user := f.seedUser(t)
	oldPlan := f.seedPlan(t, "Basic", "price_old")
	newPlan := f.seedPlan(t, "Premium", "price_new")

	require.NoError(t, f.subs.Create(context.Background(), &models.Subscription{
		UserID:                   user.ID,
		PlanID:                   oldPlan.ID,
		StripeSubscriptionID:     "sub_1",
		StripeSubscriptionItemID: "si_1",
		Status:                   models.SubscriptionActive,
	}))

	updated, err := f.service.UpdateSubscription(context.Background(), user.ID, newPlan.ID)
	require.NoError(t, err)

	assert.Equal(t, newPlan.ID, updated.PlanID)
	require.NotNil(t, updated.Plan)
	assert.Equal(t, "Premium", updated.Plan.Name)
	require.Len(t, f.gateway.priceUpdates, 1)
	assert.Equal(t, [2]string{"si_1", "price_new"}, f.gateway.priceUpdates[0])
}

func TestCancelSubscription(t *testing.T) {
	f := newBillingFixture(t)
	user := f.seedUser(t)
	plan := f.seedPlan(t, "Premium", "price_123")

	user.IsSubscribed = true
	require.NoError(t, f.users.Update(context.Background(), user))
	require.NoError(t, f.subs.Create(context.Background(), &models.Subscription{
		UserID:               user.ID,
		PlanID:               plan.ID,
		StripeSubscriptionID: "sub_1",
		Status:               models.SubscriptionActive,
	}))

	require.NoError(t, f.service.CancelSubscription(context.Background(), user.ID))

	assert.Equal(t, []string{"sub_1"}, f.gateway.canceled)

	subscription, err := f.subs.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionCanceled, subscription.Status)

	reloaded, err := f.users.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsSubscribed)
}

func TestGetSubscriptionMissing(t *testing.T) {
	f := newBillingFixture(t)
	user := f.seedUser(t)

	_, err := f.service.GetSubscription(context.Background(), user.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

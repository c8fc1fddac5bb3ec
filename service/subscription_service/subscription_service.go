package subscription_service

import (
	"time"

	"ggplay-backend/model"
)

// Store persists subscriptions.
type Store interface {
	GetByUserID(userID string) (*model.Subscription, error)
	Update(sub *model.Subscription) error
}

// SubscriptionService plan, allowance and top-up operations for the
// creator billing surface.
type SubscriptionService struct {
	store Store
}

// NewSubscriptionService creates a subscription service.
func NewSubscriptionService(store Store) *SubscriptionService {
	return &SubscriptionService{store: store}
}

// Get returns the user's subscription.
func (s *SubscriptionService) Get(userID string) (*model.Subscription, error) {
	return s.store.GetByUserID(userID)
}

// BuyHours credits capacity by decreasing usedHours, floored at zero.
func (s *SubscriptionService) BuyHours(userID string, hours int) (*model.Subscription, error) {
	sub, err := s.store.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	used := sub.UsedHours - hours
	if used < 0 {
		used = 0
	}
	sub.UsedHours = used

	if err := s.store.Update(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Upgrade switches the plan. monthlyHours of 0 selects the plan default;
// usedHours is clamped to the new allowance and the billing date moves
// 30 days out.
func (s *SubscriptionService) Upgrade(userID string, plan model.Plan, monthlyHours int) (*model.Subscription, error) {
	sub, err := s.store.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	target := monthlyHours
	if target == 0 {
		target = model.PlanMonthlyHours[plan]
	}

	sub.Plan = plan
	sub.MonthlyHours = target
	if sub.UsedHours > target {
		sub.UsedHours = target
	}
	sub.NextBilling = time.Now().Add(30 * 24 * time.Hour)

	if err := s.store.Update(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

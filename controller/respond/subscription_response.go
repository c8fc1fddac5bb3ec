package respond

import (
	"time"

	"ggplay-backend/model"
)

// BuyHoursRequest request structure for a capacity top-up
type BuyHoursRequest struct {
	Hours int `json:"hours" binding:"required,gte=1,lte=500" example:"50"`
}

// UpgradeRequest request structure for a plan change
type UpgradeRequest struct {
	Plan string `json:"plan" binding:"required,oneof=INDIE PRO STUDIO" example:"PRO"`
	// MonthlyHours overrides the plan default allowance when set
	MonthlyHours int `json:"monthly_hours" binding:"omitempty,gte=50,lte=1000" example:"400"`
}

// SubscriptionResponse subscription information response structure
type SubscriptionResponse struct {
	ID           string    `json:"id" example:"1b2c3d40-5e6f-4a7b-8c9d-0e1f2a3b4c5d"`
	UserID       string    `json:"user_id" example:"4f2c1de0-9b38-4f4c-8a6d-2f51cf6b6a01"`
	Plan         string    `json:"plan" example:"INDIE"`
	MonthlyHours int       `json:"monthly_hours" example:"200"`
	UsedHours    int       `json:"used_hours" example:"128"`
	ResetDate    time.Time `json:"reset_date" example:"2024-01-01T00:00:00Z"`
	NextBilling  time.Time `json:"next_billing" example:"2024-02-01T00:00:00Z"`
}

// ToSubscriptionResponse convert model to response
func ToSubscriptionResponse(sub *model.Subscription) SubscriptionResponse {
	if sub == nil {
		return SubscriptionResponse{}
	}
	return SubscriptionResponse{
		ID:           sub.ID,
		UserID:       sub.UserID,
		Plan:         string(sub.Plan),
		MonthlyHours: sub.MonthlyHours,
		UsedHours:    sub.UsedHours,
		ResetDate:    sub.ResetDate,
		NextBilling:  sub.NextBilling,
	}
}

package model

import "time"

// Plan subscription plan tier
type Plan string

const (
	PlanIndie  Plan = "INDIE"
	PlanPro    Plan = "PRO"
	PlanStudio Plan = "STUDIO"
)

// PlanMonthlyHours default monthly hour allowance per plan
var PlanMonthlyHours = map[Plan]int{
	PlanIndie:  200,
	PlanPro:    400,
	PlanStudio: 800,
}

// Valid reports whether the plan is a known tier.
func (p Plan) Valid() bool {
	_, ok := PlanMonthlyHours[p]
	return ok
}

// Subscription creator billing subscription (1:1 with user)
type Subscription struct {
	ID string `gorm:"primaryKey;type:char(36)" json:"id"`

	UserID string `gorm:"uniqueIndex;type:char(36);not null" json:"user_id"`

	Plan         Plan `gorm:"type:varchar(10);default:'INDIE'" json:"plan"`
	MonthlyHours int  `gorm:"type:int;default:200" json:"monthly_hours"` // Hour allowance for the current cycle
	UsedHours    int  `gorm:"type:int;default:0" json:"used_hours"`      // Hours consumed this cycle

	ResetDate   time.Time `json:"reset_date"`   // Start of the current cycle
	NextBilling time.Time `json:"next_billing"` // Next charge date

	// Timestamps
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specify table name
func (Subscription) TableName() string {
	return "tb_subscription"
}

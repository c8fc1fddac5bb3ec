package database

import (
	"errors"
	"log"
	"time"

	"ggplay-backend/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// demoEmail seeded demo creator account
const (
	demoEmail    = "demo@gg.play"
	demoPassword = "demo123"
)

// SeedDemoData inserts the demo creator account with a partially used
// INDIE subscription and a couple of stopped instances. Safe to call on
// every boot; it is a no-op once the account exists.
func SeedDemoData() error {
	var existing model.User
	err := DB.Where("email = ?", demoEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		ID:       uuid.NewString(),
		Email:    demoEmail,
		Password: string(hash),
	}

	now := time.Now()
	sub := &model.Subscription{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		Plan:         model.PlanIndie,
		MonthlyHours: model.PlanMonthlyHours[model.PlanIndie],
		UsedHours:    128,
		ResetDate:    now,
		NextBilling:  now.Add(30 * 24 * time.Hour),
	}

	metaverses := []*model.Metaverse{
		{
			ID:            uuid.NewString(),
			UserID:        user.ID,
			Name:          "Ocean Explorers",
			Kind:          model.MetaverseKind3D,
			Region:        model.RegionAsia,
			Status:        model.MetaverseStatusStopped,
			UptimeMinutes: 340,
			HoursUsed:     5,
			Version:       "v1.0.0",
		},
		{
			ID:            uuid.NewString(),
			UserID:        user.ID,
			Name:          "Pixel Dungeon",
			Kind:          model.MetaverseKind2D,
			Region:        model.RegionEU,
			Status:        model.MetaverseStatusStopped,
			UptimeMinutes: 120,
			HoursUsed:     2,
			Version:       "v1.0.0",
		},
	}

	err = DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		for _, mv := range metaverses {
			if err := tx.Create(mv).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Demo account seeded: %s", demoEmail)
	return nil
}

// models/payment_config.go
package models

import (
	"gorm.io/gorm"
)

// PaymentConfig holds the school-wide payment settings. Exactly one row
// is active at a time.
type PaymentConfig struct {
	gorm.Model
	Year            int   `json:"year"`
	MonthlyFee      int64 `json:"monthlyFee" gorm:"type:numeric(12,0)"`
	MaxInstallments int   `json:"maxInstallments" gorm:"default:2"`

	MidSemesterStart   int `json:"midSemesterStart" gorm:"default:1"`
	MidSemesterEnd     int `json:"midSemesterEnd" gorm:"default:3"`
	FinalSemesterStart int `json:"finalSemesterStart" gorm:"default:7"`
	FinalSemesterEnd   int `json:"finalSemesterEnd" gorm:"default:9"`

	// ProrationFormula suggests per-installment amounts when stored detail
	// is missing. Restricted to the variables total, count and n.
	ProrationFormula string `json:"prorationFormula" gorm:"default:'total / count'"`

	IsActive bool `json:"isActive" gorm:"default:true"`
}

// BeforeSave keeps a single active config: activating this row
// deactivates every other one.
func (cfg *PaymentConfig) BeforeSave(tx *gorm.DB) error {
	if !cfg.IsActive || cfg.ID == 0 {
		return nil
	}
	return tx.Model(&PaymentConfig{}).
		Where("id <> ?", cfg.ID).
		Update("is_active", false).Error
}

// ActivePaymentConfig returns the active config, creating the defaults
// when none exists yet.
func ActivePaymentConfig(db *gorm.DB) (PaymentConfig, error) {
	var cfg PaymentConfig
	err := db.Where("is_active = ?", true).First(&cfg).Error
	if err == nil {
		return cfg, nil
	}
	if err != gorm.ErrRecordNotFound {
		return cfg, err
	}

	cfg = PaymentConfig{
		MonthlyFee:         150000,
		MaxInstallments:    2,
		MidSemesterStart:   1,
		MidSemesterEnd:     3,
		FinalSemesterStart: 7,
		FinalSemesterEnd:   9,
		ProrationFormula:   "total / count",
		IsActive:           true,
	}
	if err := db.Create(&cfg).Error; err != nil {
		return cfg, err
	}
	return cfg, nil
}

package services

import (
	"fmt"
	"log"

	"deliverease/internal/models"
	"deliverease/internal/repositories"

	"github.com/shopspring/decimal"
)

// defaultSettings back every key the platform prices with. A missing or
// unparsable stored value falls back to these, so pricing never fails on bad
// configuration.
var defaultSettings = map[string]string{
	models.SettingBuyerTaxPercentage:      "8",
	models.SettingSellerTaxPercentage:     "5",
	models.SettingDeliveryCharge:          "5.99",
	models.SettingDriverCommissionFixed:   "5.00",
	models.SettingDriverCommissionPercent: "10",
}

// DefaultSettings returns a copy of the fallback values, keyed by setting
// name. Used to seed the settings table at startup.
func DefaultSettings() map[string]string {
	values := make(map[string]string, len(defaultSettings))
	for key, value := range defaultSettings {
		values[key] = value
	}
	return values
}

// SettingsService provides business logic for platform economic settings.
type SettingsService struct {
	repo repositories.SettingsRepository
}

// NewSettingsService creates a new instance of SettingsService.
func NewSettingsService(repo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
	}
}

// All returns every known setting, stored values overlaid on the defaults.
func (s *SettingsService) All() (map[string]string, error) {
	stored, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(defaultSettings))
	for key, value := range defaultSettings {
		values[key] = value
	}
	for key, value := range stored {
		values[key] = value
	}
	return values, nil
}

// Set updates one setting. Only known keys are accepted and the value must
// parse as a non-negative decimal.
func (s *SettingsService) Set(key, value string) error {
	if _, ok := defaultSettings[key]; !ok {
		return fmt.Errorf("unknown setting key: %s", key)
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("setting %s must be a decimal number: %w", key, err)
	}
	if parsed.IsNegative() {
		return fmt.Errorf("setting %s must not be negative", key)
	}
	return s.repo.Set(key, value)
}

// PricingContext reads the current settings into a context for one pricing
// use. Each key falls back to its default independently, so one bad row
// cannot take pricing down.
func (s *SettingsService) PricingContext() PricingContext {
	stored, err := s.repo.GetAll()
	if err != nil {
		log.Printf("Failed to load settings, pricing with defaults: %v", err)
		stored = nil
	}
	return PricingContext{
		BuyerTaxPercentage:    s.decimalValue(stored, models.SettingBuyerTaxPercentage),
		SellerTaxPercentage:   s.decimalValue(stored, models.SettingSellerTaxPercentage),
		DeliveryCharge:        s.decimalValue(stored, models.SettingDeliveryCharge),
		DriverCommissionFixed: s.decimalValue(stored, models.SettingDriverCommissionFixed),
	}
}

func (s *SettingsService) decimalValue(stored map[string]string, key string) decimal.Decimal {
	raw, ok := stored[key]
	if !ok {
		raw = defaultSettings[key]
	}
	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		log.Printf("Invalid value %q for setting %s, using default", raw, key)
		value, _ = decimal.NewFromString(defaultSettings[key])
	}
	return value
}

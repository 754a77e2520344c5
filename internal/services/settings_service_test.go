package services_test

import (
	"testing"

	"deliverease/internal/models"
	"deliverease/internal/repositories"
	"deliverease/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSettingsService_AllReturnsDefaults(t *testing.T) {
	service := services.NewSettingsService(repositories.NewMockSettingsRepository())

	values, err := service.All()
	assert.NoError(t, err)
	assert.Equal(t, "8", values[models.SettingBuyerTaxPercentage])
	assert.Equal(t, "5", values[models.SettingSellerTaxPercentage])
	assert.Equal(t, "5.99", values[models.SettingDeliveryCharge])
	assert.Equal(t, "5.00", values[models.SettingDriverCommissionFixed])
}

func TestSettingsService_SetOverridesDefault(t *testing.T) {
	repo := repositories.NewMockSettingsRepository()
	service := services.NewSettingsService(repo)

	assert.NoError(t, service.Set(models.SettingDeliveryCharge, "7.50"))

	values, err := service.All()
	assert.NoError(t, err)
	assert.Equal(t, "7.50", values[models.SettingDeliveryCharge])

	pc := service.PricingContext()
	assert.True(t, pc.DeliveryCharge.Equal(decimal.RequireFromString("7.50")))
}

func TestSettingsService_SetRejectsBadInput(t *testing.T) {
	service := services.NewSettingsService(repositories.NewMockSettingsRepository())

	assert.Error(t, service.Set("not_a_real_key", "1"))
	assert.Error(t, service.Set(models.SettingDeliveryCharge, "free"))
	assert.Error(t, service.Set(models.SettingDeliveryCharge, "-1"))
}

func TestSettingsService_PricingContextFallsBackPerKey(t *testing.T) {
	repo := repositories.NewMockSettingsRepository()
	service := services.NewSettingsService(repo)

	// A corrupted stored value must not poison the other keys.
	assert.NoError(t, repo.Set(models.SettingBuyerTaxPercentage, "garbage"))
	assert.NoError(t, repo.Set(models.SettingDeliveryCharge, "9.99"))

	pc := service.PricingContext()
	assert.True(t, pc.BuyerTaxPercentage.Equal(decimal.NewFromInt(8)), "buyer tax falls back to default: %s", pc.BuyerTaxPercentage)
	assert.True(t, pc.DeliveryCharge.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, pc.SellerTaxPercentage.Equal(decimal.NewFromInt(5)))
	assert.True(t, pc.DriverCommissionFixed.Equal(decimal.RequireFromString("5.00")))
}

package services_test

import (
	"testing"

	"deliverease/internal/models"
	"deliverease/internal/repositories"
	"deliverease/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func cartFixture(t *testing.T) (*services.CartService, *repositories.MockProductRepository) {
	t.Helper()
	productRepo := repositories.NewMockProductRepository()
	assert.NoError(t, productRepo.Create(&models.Product{
		ID: "prod-1", Name: "Rendang", Price: decimal.NewFromInt(40), SellerID: sellerID, Stock: 5,
	}))
	return services.NewCartService(repositories.NewMockCartRepository(), productRepo), productRepo
}

func TestCartService_AddAndList(t *testing.T) {
	service, _ := cartFixture(t)

	assert.NoError(t, service.AddItem(buyerID, "prod-1", 2))

	lines, err := service.Lines(buyerID)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, "prod-1", lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)

	// Adding again replaces the quantity.
	assert.NoError(t, service.AddItem(buyerID, "prod-1", 3))
	lines, err = service.Lines(buyerID)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestCartService_AddItemValidation(t *testing.T) {
	service, _ := cartFixture(t)

	assert.Error(t, service.AddItem(buyerID, "prod-1", 0))
	assert.Error(t, service.AddItem(buyerID, "no-such-product", 1))
	assert.Error(t, service.AddItem(buyerID, "prod-1", 99), "over stock")
}

func TestCartService_UpdateItem(t *testing.T) {
	service, _ := cartFixture(t)
	assert.NoError(t, service.AddItem(buyerID, "prod-1", 2))

	assert.NoError(t, service.UpdateItem(buyerID, "prod-1", 4))
	lines, _ := service.Lines(buyerID)
	assert.Equal(t, 4, lines[0].Quantity)

	// Zero quantity removes the line.
	assert.NoError(t, service.UpdateItem(buyerID, "prod-1", 0))
	lines, _ = service.Lines(buyerID)
	assert.Empty(t, lines)
}

func TestCartService_LinesSkipVanishedProducts(t *testing.T) {
	service, productRepo := cartFixture(t)
	assert.NoError(t, service.AddItem(buyerID, "prod-1", 1))

	assert.NoError(t, productRepo.Delete("prod-1"))

	lines, err := service.Lines(buyerID)
	assert.NoError(t, err)
	assert.Empty(t, lines)
}

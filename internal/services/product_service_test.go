package services_test

import (
	"errors"
	"testing"

	"deliverease/internal/errs"
	"deliverease/internal/models"
	"deliverease/internal/repositories"
	"deliverease/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductService(productRepo *repositories.MockProductRepository) (*services.ProductService, *MockUserRepository) {
	userRepo := new(MockUserRepository)
	return services.NewProductService(productRepo, userRepo), userRepo
}

func TestProductService_CreateProduct(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	service, userRepo := newProductService(productRepo)
	userRepo.On("GetByID", sellerID).Return(&models.User{ID: sellerID, Username: "warung_bu_sri"}, nil)

	seller := services.Actor{ID: sellerID, Role: models.RoleSeller}
	product := &models.Product{Name: "New Product", Price: decimal.NewFromInt(50), Stock: 20}

	err := service.CreateProduct(seller, product)
	assert.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, sellerID, product.SellerID)
	assert.Equal(t, "warung_bu_sri", product.SellerName)

	// Buyers cannot list products.
	err = service.CreateProduct(services.Actor{ID: buyerID, Role: models.RoleBuyer}, &models.Product{Name: "Nope"})
	assert.True(t, errors.Is(err, errs.ErrNotAuthorized))
}

func TestProductService_UpdateProduct(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	service, userRepo := newProductService(productRepo)
	userRepo.On("GetByID", mock.Anything).Return(&models.User{ID: sellerID, Username: "warung_bu_sri"}, nil)

	seller := services.Actor{ID: sellerID, Role: models.RoleSeller}
	product := &models.Product{Name: "Product A", Price: decimal.NewFromInt(10), Stock: 100}
	assert.NoError(t, service.CreateProduct(seller, product))

	// The owner updates freely; ownership fields survive the update.
	updated := &models.Product{ID: product.ID, Name: "Product A Updated", Price: decimal.NewFromInt(12), Stock: 95}
	assert.NoError(t, service.UpdateProduct(seller, updated))
	assert.Equal(t, sellerID, updated.SellerID)
	assert.Equal(t, "warung_bu_sri", updated.SellerName)

	// Another seller may not touch it.
	err := service.UpdateProduct(services.Actor{ID: "seller-2", Role: models.RoleSeller}, &models.Product{ID: product.ID, Name: "Hijacked"})
	assert.True(t, errors.Is(err, errs.ErrNotAuthorized))

	// Admins may.
	assert.NoError(t, service.UpdateProduct(services.Actor{ID: adminID, Role: models.RoleAdmin}, &models.Product{ID: product.ID, Name: "Moderated"}))
}

func TestProductService_DeleteProduct(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	service, userRepo := newProductService(productRepo)
	userRepo.On("GetByID", sellerID).Return(&models.User{ID: sellerID, Username: "warung_bu_sri"}, nil)

	seller := services.Actor{ID: sellerID, Role: models.RoleSeller}
	product := &models.Product{Name: "Product B", Price: decimal.NewFromInt(20), Stock: 5}
	assert.NoError(t, service.CreateProduct(seller, product))

	err := service.DeleteProduct(services.Actor{ID: "seller-2", Role: models.RoleSeller}, product.ID)
	assert.True(t, errors.Is(err, errs.ErrNotAuthorized))

	assert.NoError(t, service.DeleteProduct(seller, product.ID))

	_, err = service.GetProductByID(product.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestProductService_GetProductsBySeller(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	service, userRepo := newProductService(productRepo)
	userRepo.On("GetByID", mock.Anything).Return(&models.User{ID: sellerID, Username: "warung_bu_sri"}, nil)

	seller := services.Actor{ID: sellerID, Role: models.RoleSeller}
	assert.NoError(t, service.CreateProduct(seller, &models.Product{Name: "Product C", Price: decimal.NewFromInt(5), Stock: 1}))
	assert.NoError(t, service.CreateProduct(seller, &models.Product{Name: "Product D", Price: decimal.NewFromInt(6), Stock: 2}))

	products, err := service.GetProductsBySeller(sellerID)
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = service.GetProductsBySeller("seller-2")
	assert.NoError(t, err)
	assert.Empty(t, products)
}

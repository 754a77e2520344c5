package services

import (
	"fmt"

	"deliverease/internal/errs"
	"deliverease/internal/models"
	"deliverease/internal/repositories"

	"github.com/google/uuid"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	userRepo repositories.UserRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, userRepo repositories.UserRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductsBySeller retrieves a seller's own catalog.
func (s *ProductService) GetProductsBySeller(sellerID string) ([]models.Product, error) {
	return s.repo.GetBySeller(sellerID)
}

// CreateProduct lists a new product under the acting seller.
func (s *ProductService) CreateProduct(actor Actor, product *models.Product) error {
	if actor.Role != models.RoleSeller {
		return fmt.Errorf("%w: only sellers can list products", errs.ErrNotAuthorized)
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	product.SellerID = actor.ID
	if seller, err := s.userRepo.GetByID(actor.ID); err == nil {
		product.SellerName = seller.Username
	}
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product. Only the owning seller or an
// admin may update; the owner never changes.
func (s *ProductService) UpdateProduct(actor Actor, product *models.Product) error {
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleAdmin && existing.SellerID != actor.ID {
		return fmt.Errorf("%w: product belongs to another seller", errs.ErrNotAuthorized)
	}
	product.SellerID = existing.SellerID
	product.SellerName = existing.SellerName
	return s.repo.Update(product)
}

// DeleteProduct deletes a product, gated the same way as UpdateProduct.
func (s *ProductService) DeleteProduct(actor Actor, id string) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleAdmin && existing.SellerID != actor.ID {
		return fmt.Errorf("%w: product belongs to another seller", errs.ErrNotAuthorized)
	}
	return s.repo.Delete(id)
}

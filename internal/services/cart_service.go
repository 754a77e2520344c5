package services

import (
	"fmt"

	"deliverease/internal/models"
	"deliverease/internal/repositories"
)

// CartService provides business logic for the buyer's cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new instance of CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem puts a product in the cart, replacing any existing quantity.
func (s *CartService) AddItem(userID, productID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return fmt.Errorf("product %s not found: %w", productID, err)
	}
	if product.Stock < quantity {
		return fmt.Errorf("insufficient stock for product '%s'", product.Name)
	}
	return s.cartRepo.Upsert(&models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// UpdateItem changes a cart line's quantity; zero or negative removes it.
func (s *CartService) UpdateItem(userID, productID string, quantity int) error {
	if quantity <= 0 {
		return s.cartRepo.Remove(userID, productID)
	}
	return s.AddItem(userID, productID, quantity)
}

// RemoveItem takes one product out of the cart.
func (s *CartService) RemoveItem(userID, productID string) error {
	return s.cartRepo.Remove(userID, productID)
}

// Clear empties the cart.
func (s *CartService) Clear(userID string) error {
	return s.cartRepo.Clear(userID)
}

// Lines resolves cart items against the current catalog. Lines whose product
// has disappeared are skipped rather than failing the whole cart.
func (s *CartService) Lines(userID string) ([]models.CartLine, error) {
	items, err := s.cartRepo.GetItems(userID)
	if err != nil {
		return nil, err
	}
	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			continue
		}
		lines = append(lines, models.CartLine{
			Product:  *product,
			Quantity: item.Quantity,
		})
	}
	return lines, nil
}

package services

import (
	"fmt"
	"log"
	"time"

	"deliverease/internal/errs"
	"deliverease/internal/models"
	"deliverease/internal/repositories"
	"deliverease/pkg/rabbitmq"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Actor identifies who is performing an operation, as extracted from the JWT.
type Actor struct {
	ID   string
	Role models.Role
}

type transitionKey struct {
	from models.OrderStatus
	to   models.OrderStatus
}

// transitionActors lists every legal forward transition and the role that may
// trigger it. Cancellation is handled separately because it is legal from
// several states and crosses roles.
var transitionActors = map[transitionKey]models.Role{
	{models.OrderPending, models.OrderConfirmed}:   models.RoleSeller,
	{models.OrderConfirmed, models.OrderPreparing}: models.RoleSeller,
	{models.OrderPreparing, models.OrderReady}:     models.RoleSeller,
	{models.OrderReady, models.OrderPickedUp}:      models.RoleDriver,
	{models.OrderPickedUp, models.OrderDelivered}:  models.RoleDriver,
}

// cancellableFrom marks the states an order can still be cancelled from.
// Once a driver has picked the order up, cancellation is off the table.
var cancellableFrom = map[models.OrderStatus]bool{
	models.OrderPending:   true,
	models.OrderConfirmed: true,
	models.OrderPreparing: true,
	models.OrderReady:     true,
}

const defaultDeliveryEstimate = 45 * time.Minute

// OrderService provides business logic for orders: checkout, the status state
// machine, and driver claims.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	cartRepo    repositories.CartRepository
	settings    *SettingsService
	mqClient    *rabbitmq.Client // RabbitMQ client for publishing events
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	cartRepo repositories.CartRepository,
	settings *SettingsService,
	mqClient *rabbitmq.Client,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		settings:    settings,
		mqClient:    mqClient,
	}
}

// Checkout turns the buyer's cart into a pending order. The cart must be
// non-empty and hold products of a single seller. Item prices, the delivery
// charge and the driver commission are snapshotted onto the order; the cart
// is cleared afterwards.
func (s *OrderService) Checkout(buyerID, deliveryAddress, phoneNumber string) (*models.Order, error) {
	cartItems, err := s.cartRepo.GetItems(buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cartItems) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	orderID := uuid.New().String()
	sellerID := ""
	subtotal := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for _, cartItem := range cartItems {
		product, err := s.productRepo.GetByID(cartItem.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found: %w", cartItem.ProductID, err)
		}
		if sellerID == "" {
			sellerID = product.SellerID
		} else if sellerID != product.SellerID {
			return nil, fmt.Errorf("cart contains products from multiple sellers; checkout one seller at a time")
		}
		if product.Stock < cartItem.Quantity {
			return nil, fmt.Errorf("insufficient stock for product '%s'", product.Name)
		}
		orderItems = append(orderItems, models.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     orderID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    cartItem.Quantity,
			Price:       product.Price,
		})
		subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(cartItem.Quantity))))
	}

	pc := s.settings.PricingContext()
	quote := QuoteCheckout(subtotal, pc)
	estimated := time.Now().Add(defaultDeliveryEstimate)

	order := &models.Order{
		ID:                orderID,
		BuyerID:           buyerID,
		SellerID:          sellerID,
		Items:             orderItems,
		Total:             quote.Total,
		DeliveryCharge:    quote.DeliveryFee,
		DriverCommission:  RoundMoney(pc.DriverCommissionFixed),
		Status:            models.OrderPending,
		PaymentStatus:     models.PaymentPending,
		DeliveryAddress:   deliveryAddress,
		OrderPhoneNumber:  phoneNumber,
		EstimatedDelivery: &estimated,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.cartRepo.Clear(buyerID); err != nil {
		log.Printf("Failed to clear cart for user %s after checkout: %v", buyerID, err)
	}

	s.publish(rabbitmq.EventOrderCreated, map[string]interface{}{
		"order_id":  order.ID,
		"buyer_id":  order.BuyerID,
		"seller_id": order.SellerID,
		"total":     order.Total.StringFixed(2),
	})

	return order, nil
}

// GetOrder returns one order if the actor is a participant or an admin.
func (s *OrderService) GetOrder(actor Actor, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !s.canView(actor, order) {
		return nil, fmt.Errorf("%w: not a participant of order %s", errs.ErrNotAuthorized, orderID)
	}
	return order, nil
}

// OrdersForUser lists the orders the user participates in, newest first.
func (s *OrderService) OrdersForUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetForUser(userID)
}

// AvailableOrders lists unclaimed ready orders for the driver pool.
func (s *OrderService) AvailableOrders() ([]models.Order, error) {
	return s.orderRepo.GetAvailableForDrivers()
}

// TransitionOrder applies one status transition on behalf of an actor. The
// transition must be legal for the order's current status and the actor's
// role, and the actor must be the order's own seller, its assigned driver, or
// for cancellation its buyer or an admin. The underlying write is conditional
// on the current status, so a concurrent transition loses cleanly instead of
// overwriting.
func (s *OrderService) TransitionOrder(actor Actor, orderID string, to models.OrderStatus) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if to == models.OrderCancelled {
		if !cancellableFrom[order.Status] {
			return nil, fmt.Errorf("%w: %s -> %s", errs.ErrInvalidTransition, order.Status, to)
		}
		isBuyer := actor.Role == models.RoleBuyer && actor.ID == order.BuyerID
		if !isBuyer && actor.Role != models.RoleAdmin {
			return nil, fmt.Errorf("%w: only the buyer or an admin may cancel", errs.ErrNotAuthorized)
		}
	} else {
		role, ok := transitionActors[transitionKey{order.Status, to}]
		if !ok {
			return nil, fmt.Errorf("%w: %s -> %s", errs.ErrInvalidTransition, order.Status, to)
		}
		if actor.Role != role {
			return nil, fmt.Errorf("%w: transition %s -> %s requires role %s", errs.ErrNotAuthorized, order.Status, to, role)
		}
		switch role {
		case models.RoleSeller:
			if actor.ID != order.SellerID {
				return nil, fmt.Errorf("%w: order belongs to another seller", errs.ErrNotAuthorized)
			}
		case models.RoleDriver:
			if order.DriverID == nil || *order.DriverID != actor.ID {
				return nil, fmt.Errorf("%w: order is assigned to another driver", errs.ErrNotAuthorized)
			}
		}
	}

	if err := s.orderRepo.UpdateStatus(orderID, order.Status, to); err != nil {
		return nil, err
	}

	s.publish(rabbitmq.EventOrderStatusUpdated, map[string]interface{}{
		"order_id": orderID,
		"from":     string(order.Status),
		"to":       string(to),
		"actor_id": actor.ID,
	})

	return s.orderRepo.GetByID(orderID)
}

// ClaimOrder assigns a ready, unclaimed order to the driver. The claim is a
// conditional write, so of two concurrent drivers exactly one wins and the
// other gets errs.ErrAlreadyClaimed.
func (s *OrderService) ClaimOrder(actor Actor, orderID string) (*models.Order, error) {
	if actor.Role != models.RoleDriver {
		return nil, fmt.Errorf("%w: only drivers can claim orders", errs.ErrNotAuthorized)
	}
	if err := s.orderRepo.Claim(orderID, actor.ID); err != nil {
		return nil, err
	}

	s.publish(rabbitmq.EventOrderClaimed, map[string]interface{}{
		"order_id":  orderID,
		"driver_id": actor.ID,
	})

	return s.orderRepo.GetByID(orderID)
}

func (s *OrderService) canView(actor Actor, order *models.Order) bool {
	if actor.Role == models.RoleAdmin {
		return true
	}
	if actor.ID == order.BuyerID || actor.ID == order.SellerID {
		return true
	}
	return order.DriverID != nil && *order.DriverID == actor.ID
}

// publish sends an event without letting broker trouble fail the operation
// that triggered it.
func (s *OrderService) publish(event string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(event, payload); err != nil {
		log.Printf("Failed to publish %s event: %v", event, err)
	}
}

package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanijya/app/models"
	"github.com/shashiranjanraj/vanijya/app/repositories"
	"github.com/shashiranjanraj/vanijya/pkg/event"
	"github.com/shashiranjanraj/vanijya/pkg/metrics"
)

// LineItem is one requested product line on a new order.
type LineItem struct {
	ProductID uint `json:"product_id" validate:"required,numeric"`
	Quantity  int  `json:"quantity" validate:"required,integer,gte=1"`
}

// OrderService places orders and drives their status lifecycle.
// Placement runs in a single transaction so a bad line never leaves a
// partial order behind.
type OrderService struct {
	db        *gorm.DB
	orders    *repositories.OrderRepository
	customers *repositories.CustomerRepository
	products  *repositories.ProductRepository
}

func NewOrderService(db *gorm.DB, orders *repositories.OrderRepository, customers *repositories.CustomerRepository, products *repositories.ProductRepository) *OrderService {
	return &OrderService{db: db, orders: orders, customers: customers, products: products}
}

func (s *OrderService) Place(customerID uint, lines []LineItem) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, fmt.Errorf("order needs at least one line item: %w", ErrInvalid)
	}

	if _, err := s.customers.Find(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, fmt.Errorf("customer %d: %w", customerID, ErrNotFound)
		}
		return models.Order{}, err
	}

	order := models.Order{
		CustomerID: customerID,
		Status:     models.StatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			if line.Quantity < 1 {
				return fmt.Errorf("quantity for product %d must be at least 1: %w", line.ProductID, ErrInvalid)
			}
			product, err := s.products.Find(line.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d: %w", line.ProductID, ErrNotFound)
				}
				return err
			}
			order.Items = append(order.Items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
			})
		}
		return s.orders.WithTx(tx).Create(&order)
	})
	if err != nil {
		return models.Order{}, err
	}

	metrics.OrdersPlaced.Inc()
	event.Fire("order.placed", order)
	return order, nil
}

func (s *OrderService) Get(id uint) (models.Order, error) {
	order, err := s.orders.Find(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, fmt.Errorf("order %d: %w", id, ErrNotFound)
		}
		return models.Order{}, err
	}
	return order, nil
}

// Transition moves an order to the target status, enforcing the
// lifecycle graph. Illegal moves are conflicts, not validation errors.
func (s *OrderService) Transition(id uint, target models.Status) (models.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return models.Order{}, err
	}

	if !order.Status.CanTransition(target) {
		return models.Order{}, fmt.Errorf("order %d cannot move from %s to %s: %w", id, order.Status, target, ErrConflict)
	}

	if err := s.orders.UpdateStatus(&order, target); err != nil {
		return models.Order{}, err
	}

	metrics.OrderTransitions.WithLabelValues(string(target)).Inc()
	if target == models.StatusCancelled {
		event.Fire("order.cancelled", order)
	} else {
		event.Fire("order.transitioned", order)
	}
	return order, nil
}

func (s *OrderService) Cancel(id uint) (models.Order, error) {
	return s.Transition(id, models.StatusCancelled)
}

// Total sums unit price times quantity across the order's lines.
func (s *OrderService) Total(id uint) (float64, error) {
	order, err := s.Get(id)
	if err != nil {
		return 0, err
	}
	return order.Total(), nil
}

package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanijya/app/models"
	"github.com/shashiranjanraj/vanijya/pkg/metrics"
)

// OrderRepository handles database operations for Order and OrderItem.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// WithTx returns a copy of the repository bound to tx, so order placement
// can run entirely inside one transaction.
func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

// Find looks up an order by primary key with its items preloaded.
func (r *OrderRepository) Find(id uint) (models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	return order, err
}

// Create persists a new order together with its items.
func (r *OrderRepository) Create(order *models.Order) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(order).Error
}

// UpdateStatus moves the order to a new status.
func (r *OrderRepository) UpdateStatus(order *models.Order, status models.Status) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	order.Status = status
	return r.db.Model(order).Update("status", status).Error
}

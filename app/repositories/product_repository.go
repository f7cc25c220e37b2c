package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanijya/app/models"
	"github.com/shashiranjanraj/vanijya/pkg/metrics"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Find looks up a product by primary key.
func (r *ProductRepository) Find(id uint) (models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var product models.Product
	err := r.db.First(&product, id).Error
	return product, err
}

// All returns every product in insertion order.
func (r *ProductRepository) All() ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	err := r.db.Order("id").Find(&products).Error
	return products, err
}

// Create persists a new product record.
func (r *ProductRepository) Create(product *models.Product) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(product).Error
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(product).Error
}

// Delete removes the product row.
func (r *ProductRepository) Delete(product *models.Product) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.Delete(product).Error
}

// ReferenceCount returns how many order items reference the product.
// A referenced product must not be deleted.
func (r *ProductRepository) ReferenceCount(id uint) (int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var count int64
	err := r.db.Model(&models.OrderItem{}).Where("product_id = ?", id).Count(&count).Error
	return count, err
}

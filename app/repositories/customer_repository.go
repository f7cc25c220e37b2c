package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanijya/app/models"
	"github.com/shashiranjanraj/vanijya/pkg/metrics"
)

// CustomerRepository handles database operations for Customer and
// CustomerAccount.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Find looks up a customer by primary key.
func (r *CustomerRepository) Find(id uint) (models.Customer, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var customer models.Customer
	err := r.db.First(&customer, id).Error
	return customer, err
}

// Create persists a new customer record.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(customer).Error
}

// Update persists changes to an existing customer.
func (r *CustomerRepository) Update(customer *models.Customer) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(customer).Error
}

// Delete removes the customer row and, via the FK constraint, its accounts.
func (r *CustomerRepository) Delete(customer *models.Customer) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	// The sqlite driver does not always honour declared ON DELETE CASCADE
	// on auto-migrated tables, so accounts are removed explicitly.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.CustomerAccount{}).Error; err != nil {
			return err
		}
		return tx.Delete(customer).Error
	})
}

// OrderCount returns how many orders reference the customer.
func (r *CustomerRepository) OrderCount(id uint) (int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var count int64
	err := r.db.Model(&models.Order{}).Where("customer_id = ?", id).Count(&count).Error
	return count, err
}

// AccountRepository handles database operations for CustomerAccount.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Find looks up an account by primary key.
func (r *AccountRepository) Find(id uint) (models.CustomerAccount, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var account models.CustomerAccount
	err := r.db.First(&account, id).Error
	return account, err
}

// Create persists a new account record.
func (r *AccountRepository) Create(account *models.CustomerAccount) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(account).Error
}

// Update persists changes to an existing account.
func (r *AccountRepository) Update(account *models.CustomerAccount) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(account).Error
}

// Delete removes the account row.
func (r *AccountRepository) Delete(account *models.CustomerAccount) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.Delete(account).Error
}

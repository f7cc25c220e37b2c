package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanijya/app/models"
	"github.com/shashiranjanraj/vanijya/app/repositories"
	"github.com/shashiranjanraj/vanijya/pkg/database"
)

// CustomerService implements customer CRUD on top of the repository.
type CustomerService struct {
	customers *repositories.CustomerRepository
}

func NewCustomerService(customers *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) Create(name, email, phone string) (models.Customer, error) {
	customer := models.Customer{Name: name, Email: email, Phone: phone}

	if err := s.customers.Create(&customer); err != nil {
		if database.IsDuplicate(err) {
			return models.Customer{}, fmt.Errorf("email %q is already taken: %w", email, ErrConflict)
		}
		return models.Customer{}, err
	}

	return customer, nil
}

func (s *CustomerService) Get(id uint) (models.Customer, error) {
	customer, err := s.customers.Find(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, fmt.Errorf("customer %d: %w", id, ErrNotFound)
		}
		return models.Customer{}, err
	}
	return customer, nil
}

// Update replaces all customer fields (no partial patch).
func (s *CustomerService) Update(id uint, name, email, phone string) (models.Customer, error) {
	customer, err := s.Get(id)
	if err != nil {
		return models.Customer{}, err
	}

	customer.Name = name
	customer.Email = email
	customer.Phone = phone

	if err := s.customers.Update(&customer); err != nil {
		if database.IsDuplicate(err) {
			return models.Customer{}, fmt.Errorf("email %q is already taken: %w", email, ErrConflict)
		}
		return models.Customer{}, err
	}

	return customer, nil
}

// Delete removes the customer and their accounts. A customer with orders
// cannot be deleted — orders are the purchase record.
func (s *CustomerService) Delete(id uint) error {
	customer, err := s.Get(id)
	if err != nil {
		return err
	}

	count, err := s.customers.OrderCount(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("customer %d has %d order(s): %w", id, count, ErrConflict)
	}

	return s.customers.Delete(&customer)
}

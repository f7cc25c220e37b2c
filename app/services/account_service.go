package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanijya/app/models"
	"github.com/shashiranjanraj/vanijya/app/repositories"
	"github.com/shashiranjanraj/vanijya/pkg/database"
	"github.com/shashiranjanraj/vanijya/pkg/hash"
)

// AccountService implements customer-account CRUD. Passwords are hashed
// with bcrypt before they reach the repository.
type AccountService struct {
	accounts  *repositories.AccountRepository
	customers *repositories.CustomerRepository
}

func NewAccountService(accounts *repositories.AccountRepository, customers *repositories.CustomerRepository) *AccountService {
	return &AccountService{accounts: accounts, customers: customers}
}

func (s *AccountService) Create(username, password string, customerID uint) (models.CustomerAccount, error) {
	if _, err := s.customers.Find(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CustomerAccount{}, fmt.Errorf("customer %d: %w", customerID, ErrNotFound)
		}
		return models.CustomerAccount{}, err
	}

	hashed, err := hash.Password(password)
	if err != nil {
		return models.CustomerAccount{}, fmt.Errorf("hash password: %w", err)
	}

	account := models.CustomerAccount{
		Username:   username,
		Password:   hashed,
		CustomerID: customerID,
	}

	if err := s.accounts.Create(&account); err != nil {
		if database.IsDuplicate(err) {
			return models.CustomerAccount{}, fmt.Errorf("username %q is already taken: %w", username, ErrConflict)
		}
		return models.CustomerAccount{}, err
	}

	return account, nil
}

func (s *AccountService) Get(id uint) (models.CustomerAccount, error) {
	account, err := s.accounts.Find(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CustomerAccount{}, fmt.Errorf("account %d: %w", id, ErrNotFound)
		}
		return models.CustomerAccount{}, err
	}
	return account, nil
}

// Update replaces username and password. The owning customer never changes.
func (s *AccountService) Update(id uint, username, password string) (models.CustomerAccount, error) {
	account, err := s.Get(id)
	if err != nil {
		return models.CustomerAccount{}, err
	}

	hashed, err := hash.Password(password)
	if err != nil {
		return models.CustomerAccount{}, fmt.Errorf("hash password: %w", err)
	}

	account.Username = username
	account.Password = hashed

	if err := s.accounts.Update(&account); err != nil {
		if database.IsDuplicate(err) {
			return models.CustomerAccount{}, fmt.Errorf("username %q is already taken: %w", username, ErrConflict)
		}
		return models.CustomerAccount{}, err
	}

	return account, nil
}

func (s *AccountService) Delete(id uint) error {
	account, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.accounts.Delete(&account)
}

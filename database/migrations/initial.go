package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanijya/app/models"
	"github.com/shashiranjanraj/vanijya/pkg/migration"
)

func init() {
	migration.Register("20260301000000_create_customers_table", &CreateCustomersTable{})
	migration.Register("20260301000001_create_customer_accounts_table", &CreateCustomerAccountsTable{})
	migration.Register("20260301000002_create_products_table", &CreateProductsTable{})
	migration.Register("20260301000003_create_orders_table", &CreateOrdersTable{})
}

// -------- 0001: customers --------

type CreateCustomersTable struct{}

func (m *CreateCustomersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Customer{})
}

func (m *CreateCustomersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("customers")
}

// -------- 0002: customer accounts --------

type CreateCustomerAccountsTable struct{}

func (m *CreateCustomerAccountsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.CustomerAccount{})
}

func (m *CreateCustomerAccountsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("customer_accounts")
}

// -------- 0003: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0004: orders + order items --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	if err := db.Migrator().DropTable("order_items"); err != nil {
		return err
	}
	return db.Migrator().DropTable("orders")
}

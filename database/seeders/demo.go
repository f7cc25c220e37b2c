package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanijya/app/models"
	"github.com/shashiranjanraj/vanijya/pkg/hash"
)

func init() {
	Register("customers", SeedCustomers)
	Register("catalog", SeedCatalog)
}

// SeedCustomers inserts a couple of demo customers with accounts.
// Existing rows with the same email are left untouched.
func SeedCustomers(db *gorm.DB) error {
	customers := []models.Customer{
		{Name: "Asha Verma", Email: "asha@example.com", Phone: "+91-98100-11111"},
		{Name: "Ravi Iyer", Email: "ravi@example.com", Phone: "+91-98100-22222"},
	}

	for i := range customers {
		err := db.Where(models.Customer{Email: customers[i].Email}).
			FirstOrCreate(&customers[i]).Error
		if err != nil {
			return err
		}
	}

	password, err := hash.Password("changeme123")
	if err != nil {
		return err
	}

	account := models.CustomerAccount{
		Username:   "asha",
		Password:   password,
		CustomerID: customers[0].ID,
	}
	return db.Where(models.CustomerAccount{Username: account.Username}).
		FirstOrCreate(&account).Error
}

// SeedCatalog inserts a small demo product catalog.
func SeedCatalog(db *gorm.DB) error {
	products := []models.Product{
		{Name: "Brass Diya", Price: 10.0, Stock: 50},
		{Name: "Cotton Stole", Price: 5.0, Stock: 120},
		{Name: "Sandalwood Box", Price: 42.5, Stock: 8},
	}

	for i := range products {
		err := db.Where(models.Product{Name: products[i].Name}).
			FirstOrCreate(&products[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

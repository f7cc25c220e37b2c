package models

import "time"

// Customer is the buyer of record. Accounts and orders hang off it by
// foreign key; rows are hard-deleted, so there is no DeletedAt column.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Accounts are owned credentials: deleting the customer deletes them.
	Accounts []CustomerAccount `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	Orders   []Order           `gorm:"foreignKey:CustomerID" json:"-"`
}

// CustomerAccount is a login credential belonging to exactly one customer.
// Password holds a bcrypt hash and is never serialised.
type CustomerAccount struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Password   string    `gorm:"size:128;not null" json:"-"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

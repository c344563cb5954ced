package models

import "time"

// Add-on categories.
const (
	AddOnCategoryAddon    = "addon"
	AddOnCategorySeasonal = "seasonal"
	AddOnCategoryOneTime  = "one-time"
)

// AddOnService is an optional extra priced independently of the base
// package. Any number may attach to a single appointment.
type AddOnService struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Category    string    `bson:"category" json:"category"`
	IsActive    bool      `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

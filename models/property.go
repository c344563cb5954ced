package models

import "time"

// Property represents a serviceable lawn owned by exactly one customer.
// Its lifetime is independent of any appointment referencing it.
type Property struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"userId"`
	Address     string    `bson:"address" json:"address"`
	City        string    `bson:"city" json:"city"`
	State       string    `bson:"state" json:"state"` // 2-letter uppercase code
	ZipCode     string    `bson:"zip_code" json:"zipCode"`
	LotSize     int       `bson:"lot_size" json:"lotSize"` // square feet
	HasBackyard bool      `bson:"has_backyard" json:"hasBackyard"`
	HasDogs     bool      `bson:"has_dogs" json:"hasDogs"`
	GateCode    string    `bson:"gate_code,omitempty" json:"gateCode,omitempty"`
	IsPrimary   bool      `bson:"is_primary" json:"isPrimary"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiamondDocument is one row of the hosted diamonds table.
type DiamondDocument struct {
	ID       int64   `bson:"id"`
	Carat    float64 `bson:"carat"`
	Shape    string  `bson:"shape"`
	Clarity  string  `bson:"clarity"`
	Color    string  `bson:"color"`
	Price    int64   `bson:"price"`
	Cut      string  `bson:"cut"`
	ImageURL string  `bson:"image_url"`
	IsSold   bool    `bson:"is_sold"`
}

// SettingDocument is one row of the hosted settings table (pre-set rings
// and earrings).
type SettingDocument struct {
	ID       int64  `bson:"id"`
	Name     string `bson:"name"`
	Type     string `bson:"type"`
	Price    int64  `bson:"price"`
	ImageURL string `bson:"image_url"`
}

type OrderDocument struct {
	ID              primitive.ObjectID      `bson:"_id,omitempty"`
	OrderID         string                  `bson:"order_id"`
	CustomerEmail   string                  `bson:"customer_email"`
	Items           []OrderItemDocument     `bson:"items"`
	TotalAmount     int64                   `bson:"total_amount"`
	Status          string                  `bson:"status"`
	ShippingAddress ShippingAddressDocument `bson:"shipping_address"`
	CreatedAt       time.Time               `bson:"created_at"`
}

type OrderItemDocument struct {
	ProductID string          `bson:"product_id"`
	Name      string          `bson:"name"`
	Price     int64           `bson:"price"`
	Quantity  int             `bson:"quantity"`
	Config    *ConfigDocument `bson:"custom_config,omitempty"`
}

type ConfigDocument struct {
	Mode          string `bson:"mode"`
	Setting       string `bson:"setting"`
	Metal         string `bson:"metal"`
	Size          string `bson:"size,omitempty"`
	Backing       string `bson:"backing,omitempty"`
	BaseProductID string `bson:"base_product_id"`
}

type ShippingAddressDocument struct {
	FirstName  string `bson:"first_name"`
	LastName   string `bson:"last_name"`
	Email      string `bson:"email"`
	Phone      string `bson:"phone,omitempty"`
	Street     string `bson:"street"`
	PostalCode string `bson:"postal_code"`
	City       string `bson:"city"`
	Country    string `bson:"country,omitempty"`
}

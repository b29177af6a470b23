package entity

import "time"

const (
	ProductStatusActive   = "active"
	ProductStatusArchived = "archived"

	DefaultCurrency = "INR"
)

type Product struct {
	ID        string    `json:"id"`
	ArtisanID string    `json:"artisan_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Views     int64     `json:"views"`
	Sales     int64     `json:"sales"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductPerformance is the live sum of the performance counters over an
// artisan's products.
type ProductPerformance struct {
	ProductCount int64   `json:"product_count"`
	Views        int64   `json:"views"`
	Sales        int64   `json:"sales"`
	Revenue      float64 `json:"revenue"`
}

type ArtisanMetrics struct {
	ArtisanID    string    `json:"artisan_id"`
	TotalRevenue float64   `json:"total_revenue"`
	TotalOrders  int64     `json:"total_orders"`
	Rating       float64   `json:"rating"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CategoryPrice struct {
	Category     string  `json:"category"`
	AveragePrice float64 `json:"average_price"`
	ProductCount int64   `json:"product_count"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID          string    `json:"id"`
	ArtisanID   string    `json:"artisan_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

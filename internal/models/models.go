package models

// Follow-up status values. Only 'closed_won' carries money into the ledger.
const (
	StatusNotContacted = "not_contacted"
	StatusScheduled    = "scheduled"
	StatusClosedWon    = "closed_won"
	StatusClosedLost   = "closed_lost"
)

// Salesperson - The staff member who owns customer relationships
type Salesperson struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100" json:"name"`
	Phone string `json:"phone"`
}

// Customer - One relationship entry in the follow-up pipeline
type Customer struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `json:"name"`
	Mobile          string     `json:"mobile"`
	Location        string     `json:"location"`
	SalespersonID   uint       `json:"salesperson_id"`
	SalespersonName string     `json:"salesperson_name"` // Snapshot so the ledger survives staff edits
	FollowUps       []FollowUp `gorm:"foreignKey:CustomerID" json:"follow_ups"`
}

// FollowUp - A dated follow-up event on a customer.
// Date is the plain calendar date string (YYYY-MM-DD) the entry form submits.
type FollowUp struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	CustomerID uint    `json:"customer_id"`
	Date       string  `gorm:"size:20" json:"date"`
	Status     string  `json:"status"` // 'not_contacted', 'scheduled', 'closed_won', 'closed_lost'
	Amount     float64 `json:"amount"` // Only meaningful when status is 'closed_won'
	Remarks    string  `json:"remarks"`
}

// Product - The Inventory
type Product struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	ModelNumber   string  `json:"model_number"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}

// StockSale - A point-of-sale transaction. Product fields are snapshotted
// at sale time so the sale history survives product edits and deletes.
type StockSale struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ProductID    uint   `json:"product_id"`
	ProductName  string `json:"product_name"`
	BrandName    string `json:"brand_name"`
	ModelNumber  string `json:"model_number"`
	SaleDate     string `gorm:"size:20" json:"sale_date"` // YYYY-MM-DD
	CustomerName string `json:"customer_name"`
	BillNumber   string `json:"bill_number"`
	Quantity     int    `json:"quantity"`
}

package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/database"
	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/models"
	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// SaleRequest is the counter-sale form payload.
type SaleRequest struct {
	ProductID    uint   `json:"product_id" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	SaleDate     string `json:"sale_date"` // defaults to today
}

// --- GET: /api/sales ---
func GetSales(c *gin.Context) {
	sales, err := database.GetStockSales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

// --- POST: /api/sales ---
func RecordSale(c *gin.Context) {
	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
		return
	}

	saleDate := req.SaleDate
	if saleDate == "" {
		saleDate = time.Now().Format("2006-01-02")
	} else if !report.ValidDay(saleDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale date"})
		return
	}

	// 1. Start a Database Transaction (ACID Safety)
	tx := database.DB.Begin()

	// 2. Lock the product row to prevent race conditions on stock
	var product models.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, req.ProductID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product %d not found", req.ProductID)})
		return
	}

	// 3. Check and deduct stock
	if product.StockQuantity < req.Quantity {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Insufficient stock for %s", product.Name)})
		return
	}
	product.StockQuantity -= req.Quantity
	if err := tx.Save(&product).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
		return
	}

	// 4. Create the sale with product fields snapshotted and a stamped
	//    bill number
	sale := models.StockSale{
		ProductID:    product.ID,
		ProductName:  product.Name,
		BrandName:    product.Brand,
		ModelNumber:  product.ModelNumber,
		SaleDate:     saleDate,
		CustomerName: req.CustomerName,
		BillNumber:   newBillNumber(),
		Quantity:     req.Quantity,
	}
	if err := tx.Create(&sale).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sale record"})
		return
	}

	// 5. Commit Transaction
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{
		"message":     "Sale recorded!",
		"sale_id":     sale.ID,
		"bill_number": sale.BillNumber,
	})
}

// newBillNumber stamps a short unique bill reference, e.g. "VE-1A2B3C4D".
func newBillNumber() string {
	id := strings.ToUpper(uuid.New().String())
	return "VE-" + strings.ReplaceAll(id, "-", "")[:8]
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/database"
	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/models"
	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/report"

	"github.com/gin-gonic/gin"
)

// --- GET: /api/customers ---
func GetCustomers(c *gin.Context) {
	customers, err := database.GetEngagementRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// --- POST: /api/customers ---
func AddCustomer(c *gin.Context) {
	var newCustomer models.Customer

	if err := c.ShouldBindJSON(&newCustomer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Keep the denormalized salesperson name honest when an ID is given
	if newCustomer.SalespersonID != 0 && newCustomer.SalespersonName == "" {
		var sp models.Salesperson
		if err := database.DB.First(&sp, newCustomer.SalespersonID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Salesperson not found"})
			return
		}
		newCustomer.SalespersonName = sp.Name
	}

	if err := database.DB.Create(&newCustomer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, newCustomer)
}

// FollowUpRequest is the follow-up entry form payload.
type FollowUpRequest struct {
	Date    string  `json:"date" binding:"required"`
	Status  string  `json:"status" binding:"required"`
	Amount  float64 `json:"amount"`
	Remarks string  `json:"remarks"`
}

// --- POST: /api/customers/:id/followups ---
// Data quality is enforced HERE, at the entry boundary. The report
// engine downstream stays defensive but never rejects records.
func AddFollowUp(c *gin.Context) {
	// 1. Resolve the customer
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Customer ID"})
		return
	}
	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	// 2. Parse and validate the form payload
	var input FollowUpRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	switch input.Status {
	case models.StatusNotContacted, models.StatusScheduled, models.StatusClosedLost:
		if input.Amount != 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount is only allowed on closed_won follow-ups"})
			return
		}
	case models.StatusClosedWon:
		if input.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "closed_won follow-ups require a positive amount"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown follow-up status"})
		return
	}

	if !report.ValidDay(input.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid follow-up date"})
		return
	}

	// 3. Save
	followUp := models.FollowUp{
		CustomerID: customer.ID,
		Date:       input.Date,
		Status:     input.Status,
		Amount:     input.Amount,
		Remarks:    input.Remarks,
	}
	if err := database.DB.Create(&followUp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create follow-up"})
		return
	}

	c.JSON(http.StatusCreated, followUp)
}

// --- GET: /api/salespersons ---
func GetSalespersons(c *gin.Context) {
	var salespersons []models.Salesperson
	if err := database.DB.Find(&salespersons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch salespersons"})
		return
	}
	c.JSON(http.StatusOK, salespersons)
}

// --- POST: /api/salespersons ---
func AddSalesperson(c *gin.Context) {
	var sp models.Salesperson
	if err := c.ShouldBindJSON(&sp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := database.DB.Create(&sp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create salesperson"})
		return
	}
	c.JSON(http.StatusCreated, sp)
}

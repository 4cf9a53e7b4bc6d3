package database

import (
	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/models"

	"gorm.io/gorm"
)

// GetEngagementRecords loads every customer with its follow-ups in
// insertion order. The report engine depends on that ordering for
// stable detail lines, so the Preload pins it explicitly.
func GetEngagementRecords() ([]models.Customer, error) {
	var customers []models.Customer
	err := DB.
		Preload("FollowUps", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("id ASC").
		Find(&customers).Error
	return customers, err
}

// GetStockSales loads every point-of-sale record in insertion order.
func GetStockSales() ([]models.StockSale, error) {
	var sales []models.StockSale
	err := DB.Order("id ASC").Find(&sales).Error
	return sales, err
}

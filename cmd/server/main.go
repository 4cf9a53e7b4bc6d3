package main

import (
	"log"
	"os"
	"time"

	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/database"
	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: No .env file found")
	}

	database.Connect()
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"}, // Allow the web frontend
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })

	api := r.Group("/api")
	{
		// Record entry (already-validated data feeding the ledger)
		api.GET("/salespersons", handlers.GetSalespersons)
		api.POST("/salespersons", handlers.AddSalesperson)
		api.GET("/customers", handlers.GetCustomers)
		api.POST("/customers", handlers.AddCustomer)
		api.POST("/customers/:id/followups", handlers.AddFollowUp)
		api.GET("/products", handlers.GetProducts)
		api.POST("/products", handlers.AddProduct)
		api.PUT("/products/:id", handlers.UpdateProduct)
		api.DELETE("/products/:id", handlers.DeleteProduct)
		api.GET("/sales", handlers.GetSales)
		api.POST("/sales", handlers.RecordSale)

		// Daily revenue ledger + spreadsheet export
		api.GET("/reports/daily", handlers.GetDailyLedger)
		api.GET("/reports/daily/export", handlers.ExportDailyReport)
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	log.Println("🚀 Server starting on " + baseURL)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

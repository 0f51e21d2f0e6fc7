package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Vru01/SanchiWellnessWebsite/models"
	"github.com/Vru01/SanchiWellnessWebsite/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the catalog when empty
	if err := seedProducts(db); err != nil {
		log.Printf("❌ Seeding error: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	allowedOrigins := []string{"*"}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// seedProducts inserts the launch catalog, but only into an empty
// products table so redeploys never duplicate or overwrite rows.
func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("✅ Products already exist. Skipping seed.")
		return nil
	}

	log.Println("Database empty. Seeding products...")
	products := []models.Product{
		{Name: "Male Might", Description: "Extreme Satisfaction", Price: 899, Category: "Men's Health", Image: "https://res.cloudinary.com/dfqgwgehn/image/upload/v1767969563/P1_gw0rtq.jpg", Tag: "Best Seller"},
		{Name: "Virility Maxx", Description: "Vitality Booster", Price: 749, Category: "Men's Health", Image: "https://res.cloudinary.com/dfqgwgehn/image/upload/v1767969562/P2_rnqzem.jpg", Tag: "Trending"},
		{Name: "Piyoosh", Description: "Pure Cow Colostrum", Price: 699, Category: "Immunity", Image: "https://res.cloudinary.com/dfqgwgehn/image/upload/v1767969562/P4_gjkkw5.jpg"},
		{Name: "Wild Roots", Description: "Anti Hair Fall Shampoo", Price: 349, Category: "Hair Care", Image: "https://res.cloudinary.com/dfqgwgehn/image/upload/v1767969563/P5_yu19ca.jpg", Tag: "Herbal"},
		{Name: "Aspire Face Wash", Description: "Cucumber & Tea Tree", Price: 249, Category: "Face Care", Image: "https://res.cloudinary.com/dfqgwgehn/image/upload/v1767969579/P9_vc69ms.jpg", Tag: "Daily Use"},
		{Name: "Aloe Aura", Description: "Soothe & Glow Gel", Price: 199, Category: "Skin Care", Image: "https://res.cloudinary.com/dfqgwgehn/image/upload/v1767969562/P3_r2frvm.jpg"},
		{Name: "Blossom Care", Description: "Intimate Hygiene Wash", Price: 299, Category: "Personal Care", Image: "https://res.cloudinary.com/dfqgwgehn/image/upload/v1767969563/P6_akilmv.jpg"},
		{Name: "Aspire Saffron Soap", Description: "Sandalwood & Saffron", Price: 129, Category: "Bath & Body", Image: "https://res.cloudinary.com/dfqgwgehn/image/upload/v1767969562/P7_wemkns.jpg", Tag: "Organic"},
		{Name: "Aspire Glow Soap", Description: "Cream Soft Soap", Price: 119, Category: "Bath & Body", Image: "https://res.cloudinary.com/dfqgwgehn/image/upload/v1767969562/P8_jmucip.jpg"},
	}

	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Println("✅ Products seeded successfully.")
	return nil
}

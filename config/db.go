package config

import (
	"log"
	"os"
	"strings"
	"time"

	"dorm-backend/models"

	sqldriver "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func resolveMySQLDSN() string {
	if raw := strings.TrimSpace(os.Getenv("MYSQL_URL")); raw != "" {
		return raw
	}

	cfg := sqldriver.NewConfig()
	cfg.User = envOrDefault("DB_USER", "root")
	cfg.Passwd = envOrDefault("DB_PASS", "")
	cfg.Net = "tcp"
	cfg.Addr = envOrDefault("DB_HOST", "127.0.0.1") + ":" + envOrDefault("DB_PORT", "3306")
	cfg.DBName = envOrDefault("DB_NAME", "dorm_db")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

// SeedDatabase creates the default owner account on an empty database.
func SeedDatabase() {
	var ownerCount int64
	DB.Model(&models.User{}).Where("role IN ?", []string{models.RoleAdmin, models.RoleOwner}).Count(&ownerCount)
	if ownerCount > 0 {
		return
	}

	password := envOrDefault("SEED_OWNER_PASSWORD", "owner123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default owner password: %v", err)
		return
	}

	owner := models.User{
		Email:     envOrDefault("SEED_OWNER_EMAIL", "owner@dorm.local"),
		Password:  string(hash),
		FirstName: "Dorm",
		LastName:  "Owner",
		Role:      models.RoleOwner,
	}
	if err := DB.Create(&owner).Error; err != nil {
		log.Printf("warning: failed to seed default owner: %v", err)
		return
	}
	log.Println("Default owner account seeded")
}

func ConnectDatabase() error {
	dsn := resolveMySQLDSN()

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}
	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// Migrate applies the schema in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.UtilityBill{},
		&models.Payment{},
		&models.Announcement{},
	)
}

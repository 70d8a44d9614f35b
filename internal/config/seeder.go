package config

import (
	"log"

	"fundledger/internal/adapters/persistence/models"
	"fundledger/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("Admin seeder skipped: %v", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// seedAdminUser seeds the default admin user.
// Development only; in production create the admin through a secure
// process and change this password immediately.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", "ADMIN").Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@fundledger.local",
		Password: hashedPassword,
		Role:     "ADMIN",
		IsActive: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Admin user created: %s", admin.Username)
	return nil
}

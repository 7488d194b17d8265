package database

import (
	"errors"
	"fmt"

	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Default administrator credentials, seeded on every start.
const (
	DefaultAdminUsername = "1234"
	DefaultAdminPassword = "1234"
)

// SeedDefaultAdmin creates the default administrator account, or resets
// its role and password if it already exists. It runs unconditionally on
// every start, so restarting the service restores the seeded password.
// That reset is intentional, inherited behavior, not an accident.
func SeedDefaultAdmin(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	var admin models.User
	err = db.Where("username = ?", DefaultAdminUsername).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin = models.User{
			Username:     DefaultAdminUsername,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("create default admin: %w", err)
		}
	case err != nil:
		return fmt.Errorf("look up default admin: %w", err)
	default:
		updates := map[string]interface{}{
			"role":          models.RoleAdmin,
			"password_hash": string(hash),
		}
		if err := db.Model(&admin).Updates(updates).Error; err != nil {
			return fmt.Errorf("reset default admin: %w", err)
		}
	}

	return nil
}

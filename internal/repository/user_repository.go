package repository

import (
	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/models"

	"gorm.io/gorm"
)

// UserRepository persists accounts.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a repository over the given connection pool.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new account. A username collision yields ErrDuplicate.
func (r *UserRepository) Create(user *models.User) error {
	return translate(r.db.Create(user).Error)
}

// GetByID returns a single account, or ErrNotFound.
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetByUsername returns the account holding the username, or ErrNotFound.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

package repository

import (
	"fmt"

	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/models"

	"gorm.io/gorm"
)

// List paging bounds.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// GameRepository persists catalog entries.
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a repository over the given connection pool.
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// List returns a page of games plus the total count of the filtered set.
// When q is non-empty the match is a case-insensitive substring match on
// the title. The total reflects the filtered set, not the page.
func (r *GameRepository) List(q string, limit, offset int) ([]models.Game, int64, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	query := r.db.Model(&models.Game{})
	if q != "" {
		// LOWER/LIKE instead of ILIKE so the same query runs on
		// postgres and sqlite.
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+q+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count games: %w", err)
	}

	var games []models.Game
	if err := query.Order("id").Limit(limit).Offset(offset).Find(&games).Error; err != nil {
		return nil, 0, fmt.Errorf("list games: %w", err)
	}

	return games, total, nil
}

// GetByID returns a single game, or ErrNotFound.
func (r *GameRepository) GetByID(id uint) (*models.Game, error) {
	var game models.Game
	if err := r.db.First(&game, id).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

// Create persists a new game. A title collision yields ErrDuplicate;
// the store's unique index is the only arbiter of concurrent creates.
func (r *GameRepository) Create(game *models.Game) error {
	return translate(r.db.Create(game).Error)
}

// Update applies only the supplied columns to the game and returns the
// refreshed row. An unknown id yields ErrNotFound, a title collision
// ErrDuplicate.
func (r *GameRepository) Update(id uint, fields map[string]interface{}) (*models.Game, error) {
	var game models.Game
	if err := r.db.First(&game, id).Error; err != nil {
		return nil, translate(err)
	}

	if len(fields) > 0 {
		if err := r.db.Model(&game).Updates(fields).Error; err != nil {
			return nil, translate(err)
		}
	}

	if err := r.db.First(&game, id).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

// Delete removes a game, or returns ErrNotFound when no row matches.
func (r *GameRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Game{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

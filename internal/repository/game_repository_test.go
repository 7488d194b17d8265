package repository

import (
	"testing"

	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository_CreateAndGet(t *testing.T) {
	repo := NewGameRepository(openTestDB(t, "gamecreate"))

	game := models.Game{
		Title:  "Tetris",
		Genre:  strPtr("Arcade"),
		Rating: f64Ptr(4.2),
	}
	require.NoError(t, repo.Create(&game))
	require.NotZero(t, game.ID)

	got, err := repo.GetByID(game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tetris", got.Title)
	assert.Equal(t, "Arcade", *got.Genre)
	assert.Equal(t, 4.2, *got.Rating)
	// Omitted optional fields stay unset
	assert.Nil(t, got.URL)
	assert.Nil(t, got.Description)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGameRepository_DuplicateTitleLeavesStoreUnchanged(t *testing.T) {
	db := openTestDB(t, "gamedup")
	repo := NewGameRepository(db)

	require.NoError(t, repo.Create(&models.Game{Title: "X"}))

	err := repo.Create(&models.Game{Title: "X"})
	require.ErrorIs(t, err, ErrDuplicate)

	var count int64
	require.NoError(t, db.Model(&models.Game{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGameRepository_UpdatePartial(t *testing.T) {
	repo := NewGameRepository(openTestDB(t, "gameupdate"))

	game := models.Game{Title: "X", Genre: strPtr("Arcade"), Rating: f64Ptr(4.2)}
	require.NoError(t, repo.Create(&game))

	updated, err := repo.Update(game.ID, map[string]interface{}{"rating": 4.8})
	require.NoError(t, err)
	assert.Equal(t, 4.8, *updated.Rating)
	// Omitted fields keep their prior values
	assert.Equal(t, "X", updated.Title)
	assert.Equal(t, "Arcade", *updated.Genre)

	// Explicit null clears an optional field
	updated, err = repo.Update(game.ID, map[string]interface{}{"genre": nil})
	require.NoError(t, err)
	assert.Nil(t, updated.Genre)
}

func TestGameRepository_UpdateErrors(t *testing.T) {
	repo := NewGameRepository(openTestDB(t, "gameupdateerr"))

	require.NoError(t, repo.Create(&models.Game{Title: "first"}))
	second := models.Game{Title: "second"}
	require.NoError(t, repo.Create(&second))

	_, err := repo.Update(9999, map[string]interface{}{"rating": 1.0})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(second.ID, map[string]interface{}{"title": "first"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestGameRepository_Delete(t *testing.T) {
	repo := NewGameRepository(openTestDB(t, "gamedelete"))

	game := models.Game{Title: "doomed"}
	require.NoError(t, repo.Create(&game))

	require.NoError(t, repo.Delete(game.ID))

	_, err := repo.GetByID(game.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(game.ID), ErrNotFound)
}

func TestGameRepository_List(t *testing.T) {
	repo := NewGameRepository(openTestDB(t, "gamelist"))

	for _, title := range []string{"Super Mario", "Mario Kart", "Zelda"} {
		require.NoError(t, repo.Create(&models.Game{Title: title}))
	}

	// Case-insensitive substring match; total reflects the filtered set
	items, total, err := repo.List("mario", 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 2)

	// Paging applies after filtering, total is unaffected
	items, total, err = repo.List("mario", 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 1)

	// No filter returns everything
	items, total, err = repo.List("", 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, items, 3)

	// Out-of-range clamps fall back to defaults
	items, _, err = repo.List("", -5, -10)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

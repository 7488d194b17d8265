package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/models"
	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/repository"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// CreateGameInput defines the structure for creating a game.
type CreateGameInput struct {
	Title       string   `json:"title" example:"Tetris"`
	Genre       *string  `json:"genre" example:"Arcade"`
	URL         *string  `json:"url" example:"https://example.com/tetris"`
	ImageURL    *string  `json:"image_url" example:"https://picsum.photos/200"`
	Description *string  `json:"description"`
	Rating      *float64 `json:"rating" example:"4.2"`
}

// GameListResponse defines the structure for a page of games.
type GameListResponse struct {
	Items  []models.Game `json:"items"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// endregion

// GameHandler serves the catalog CRUD routes.
type GameHandler struct {
	games *repository.GameRepository
}

// NewGameHandler creates a handler over the given repository.
func NewGameHandler(games *repository.GameRepository) *GameHandler {
	return &GameHandler{games: games}
}

// List godoc
// @Summary      List games
// @Description  Retrieves games with optional case-insensitive title filtering and paging. The total reflects the filtered set.
// @Tags         games
// @Produce      json
// @Param        q      query  string  false  "Substring to match against titles"
// @Param        limit  query  int     false  "Page size"  default(50)  maximum(200)
// @Param        offset query  int     false  "Page start" default(0)
// @Success      200  {object}  GameListResponse
// @Router       /games [get]
func (h *GameHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = repository.DefaultListLimit
	}
	if limit > repository.MaxListLimit {
		limit = repository.MaxListLimit
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	items, total, err := h.games.List(c.Query("q"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}
	if items == nil {
		items = []models.Game{}
	}

	c.JSON(http.StatusOK, GameListResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// Get godoc
// @Summary      Get a single game by ID
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200  {object}  models.Game
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *GameHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	game, err := h.games.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, game)
}

// Create godoc
// @Summary      Create a new game
// @Description  Creates a catalog entry. Title is required and must be unique.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body CreateGameInput true "Game Info"
// @Success      201  {object}  models.Game
// @Failure      400  {object}  ErrorResponse "Missing title"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Title already exists"
// @Failure      415  {object}  ErrorResponse
// @Router       /games [post]
func (h *GameHandler) Create(c *gin.Context) {
	if !requireJSONBody(c) {
		return
	}

	var input CreateGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'title' is required"})
		return
	}

	game := models.Game{
		Title:       title,
		Genre:       input.Genre,
		URL:         input.URL,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		Rating:      input.Rating,
	}

	if err := h.games.Create(&game); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "title already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, game)
}

// updatableGameFields are the JSON keys a partial update may touch; they
// match the column names one to one.
var updatableGameFields = []string{"title", "genre", "url", "image_url", "description", "rating"}

// Update godoc
// @Summary      Update a game
// @Description  Applies only the supplied fields; omitted fields keep their values.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "Game ID"
// @Param        input body  CreateGameInput true  "Fields to change"
// @Success      200  {object}  models.Game
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      409  {object}  ErrorResponse "Title already exists"
// @Failure      415  {object}  ErrorResponse
// @Router       /games/{id} [put]
func (h *GameHandler) Update(c *gin.Context) {
	if !requireJSONBody(c) {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	for _, field := range updatableGameFields {
		if value, present := body[field]; present {
			updates[field] = value
		}
	}

	if raw, present := updates["title"]; present {
		title, isString := raw.(string)
		title = strings.TrimSpace(title)
		if !isString || title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "'title' must be a non-empty string"})
			return
		}
		updates["title"] = title
	}

	game, err := h.games.Update(id, updates)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "title already exists"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
	default:
		c.JSON(http.StatusOK, game)
	}
}

// Delete godoc
// @Summary      Delete a game
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200  {object}  map[string]interface{} "{"status": "deleted", "id": 1}"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func (h *GameHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.games.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": id})
}

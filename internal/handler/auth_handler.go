package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/auth"
	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/models"
	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/repository"
	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// CredentialsInput defines the structure for registration and login.
type CredentialsInput struct {
	Username string `json:"username" example:"player1"`
	Password string `json:"password" example:"secret"`
}

// MeResponse wraps the session's account, or null when anonymous.
type MeResponse struct {
	User *models.SafeUser `json:"user"`
}

// endregion

// AuthHandler serves registration, login, logout and session lookup.
type AuthHandler struct {
	users    *repository.UserRepository
	sessions *session.Manager
}

// NewAuthHandler creates a handler over the given repository and
// session manager.
func NewAuthHandler(users *repository.UserRepository, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// bindCredentials reads and trims the username/password body. Returns
// false when the request was already answered.
func (h *AuthHandler) bindCredentials(c *gin.Context) (username, password string, ok bool) {
	if !requireJSONBody(c) {
		return "", "", false
	}

	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", "", false
	}

	return strings.TrimSpace(input.Username), strings.TrimSpace(input.Password), true
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates an account with the default "user" role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body CredentialsInput true "Credentials"
// @Success      200  {object}  map[string]bool "{"ok": true}"
// @Failure      400  {object}  ErrorResponse "Missing username or password"
// @Failure      409  {object}  ErrorResponse "Username already taken"
// @Failure      415  {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	username, password, ok := h.bindCredentials(c)
	if !ok {
		return
	}
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := h.users.Create(&user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and establishes a session cookie recording the user id and role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body CredentialsInput true "Credentials"
// @Success      200  {object}  map[string]interface{} "{"ok": true, "user": {...}}"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      415  {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	username, password, ok := h.bindCredentials(c)
	if !ok {
		return
	}

	user, err := h.users.GetByUsername(username)
	if err != nil {
		// Unknown username and wrong password are indistinguishable.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if err := h.sessions.Issue(c, user.ID, user.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": user.ToSafe()})
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the session cookie unconditionally.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool "{"ok": true}"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me godoc
// @Summary      Get the session's account
// @Description  Resolves the session to a password-free account representation, or null when anonymous.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  MeResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get(auth.ContextUserID)
	if !exists {
		c.JSON(http.StatusOK, MeResponse{User: nil})
		return
	}

	user, err := h.users.GetByID(userID.(uint))
	if err != nil {
		// Stale session for a deleted account reads as anonymous.
		c.JSON(http.StatusOK, MeResponse{User: nil})
		return
	}

	safe := user.ToSafe()
	c.JSON(http.StatusOK, MeResponse{User: &safe})
}

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/RanjitKuMallick/BitCrave/internal/config"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
	"github.com/RanjitKuMallick/BitCrave/internal/middleware"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
	"github.com/RanjitKuMallick/BitCrave/internal/session"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	sessions *session.Store
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, sessions *session.Store) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, sessions: sessions}
}

// --------- Requests ---------

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var admin models.Admin
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&admin).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	sid, err := h.sessions.Create(c.Request.Context(), admin.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_create_session", "Server error during login.")
		return
	}

	token, err := h.generateToken(&admin, sid)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Server error during login.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
		},
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sid := c.MustGet(middleware.ContextSessionToken).(string)

	if err := h.sessions.Revoke(c.Request.Context(), sid); err != nil {
		httperr.Internal(c, "failed_to_revoke_session", "Server error during logout.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(admin *models.Admin, sid string) (string, error) {
	claims := jwt.MapClaims{
		"sub": admin.ID,
		"sid": sid,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/su-physio/clinic-scheduler/internal/config"
	"github.com/su-physio/clinic-scheduler/internal/httperr"
	"github.com/su-physio/clinic-scheduler/internal/kvstore"
	"github.com/su-physio/clinic-scheduler/internal/logger"
	"github.com/su-physio/clinic-scheduler/internal/middleware"
	"github.com/su-physio/clinic-scheduler/internal/models"
	"github.com/su-physio/clinic-scheduler/internal/timezone"
)

// Durable keys for the shared staff credential and the session snapshot.
const (
	KeyAdminUsername = "admin_username"
	KeyAdminPassword = "admin_password"
	KeyAdminSession  = "admin_session"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"

	sessionTTL = 24 * time.Hour
)

type AuthHandler struct {
	kv     kvstore.Store
	config *config.Config
}

func NewAuthHandler(kv kvstore.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{kv: kv, config: cfg}
}

// EnsureDefaultAdmin seeds the shared credential on first boot so the
// dashboard is reachable out of the box.
func (h *AuthHandler) EnsureDefaultAdmin(ctx context.Context) error {
	if _, err := h.kv.Get(ctx, KeyAdminPassword); err == nil {
		return nil
	} else if !errors.Is(err, kvstore.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := h.kv.Set(ctx, KeyAdminUsername, defaultAdminUsername); err != nil {
		return err
	}
	if err := h.kv.Set(ctx, KeyAdminPassword, string(hash)); err != nil {
		return err
	}

	logger.Log.Info("seeded default admin credential", "username", defaultAdminUsername)
	return nil
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Username and password are required.")
		return
	}

	ctx := c.Request.Context()

	username, err := h.kv.Get(ctx, KeyAdminUsername)
	if errors.Is(err, kvstore.ErrNotFound) {
		username = defaultAdminUsername
	} else if err != nil {
		httperr.Internal(c, "storage_error", "Could not read credentials.")
		return
	}

	hash, err := h.kv.Get(ctx, KeyAdminPassword)
	if err != nil {
		httperr.Internal(c, "storage_error", "Could not read credentials.")
		return
	}

	if req.Username != username ||
		bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Wrong username or password.")
		return
	}

	now := timezone.Now()
	expiresAt := now.Add(sessionTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	})

	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		httperr.Internal(c, "token_error", "Could not issue session token.")
		return
	}

	session := models.AdminSession{
		Username:  username,
		LoginTime: now,
		ExpiresAt: expiresAt,
	}
	if raw, err := json.Marshal(session); err == nil {
		if err := h.kv.Set(ctx, KeyAdminSession, string(raw)); err != nil {
			logger.Log.Warn("failed to persist admin session snapshot", "err", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      signed,
		"username":   username,
		"expires_at": expiresAt,
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Current and new password are required.")
		return
	}

	if len(req.NewPassword) < 6 {
		httperr.BadRequest(c, "password_too_short", "Password must be at least 6 characters.")
		return
	}

	ctx := c.Request.Context()

	hash, err := h.kv.Get(ctx, KeyAdminPassword)
	if err != nil {
		httperr.Internal(c, "storage_error", "Could not read credentials.")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.CurrentPassword)) != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Current password is wrong.")
		return
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "hash_error", "Could not store the new password.")
		return
	}

	if err := h.kv.Set(ctx, KeyAdminPassword, string(newHash)); err != nil {
		httperr.Internal(c, "storage_error", "Could not store the new password.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "password_changed"})
}

// ResetPassword restores the default credential.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "hash_error", "Could not reset the password.")
		return
	}

	if err := h.kv.Set(c.Request.Context(), KeyAdminPassword, string(hash)); err != nil {
		httperr.Internal(c, "storage_error", "Could not reset the password.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "password_reset"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"username": c.MustGet(middleware.ContextUsername).(string),
	})
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/su-physio/clinic-scheduler/internal/httperr"
	"github.com/su-physio/clinic-scheduler/internal/kvstore"
	"github.com/su-physio/clinic-scheduler/internal/notify"
	ucBooking "github.com/su-physio/clinic-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// SettingsHandler manages the Telegram credentials stored in the record
// store and the staff-triggered notification actions built on them.
type SettingsHandler struct {
	kv        kvstore.Store
	telegram  *notify.TelegramNotifier
	summary   *ucBooking.SendDailySummary
	reminders *ucBooking.SendUpcomingReminders
}

func NewSettingsHandler(
	kv kvstore.Store,
	telegram *notify.TelegramNotifier,
	summary *ucBooking.SendDailySummary,
	reminders *ucBooking.SendUpcomingReminders,
) *SettingsHandler {
	return &SettingsHandler{
		kv:        kv,
		telegram:  telegram,
		summary:   summary,
		reminders: reminders,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TelegramSettingsRequest struct {
	BotToken string `json:"bot_token"`
	ChatID   string `json:"chat_id"`
}

// ======================================================
// TELEGRAM SETTINGS
// ======================================================

func (h *SettingsHandler) GetTelegramSettings(c *gin.Context) {
	token, err := h.kv.Get(c.Request.Context(), notify.KeyBotToken)
	if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		httperr.Internal(c, "storage_error", "Failed to load settings.")
		return
	}
	chatID, err := h.kv.Get(c.Request.Context(), notify.KeyChatID)
	if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		httperr.Internal(c, "storage_error", "Failed to load settings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bot_token":  token,
		"chat_id":    chatID,
		"configured": token != "" && chatID != "",
	})
}

func (h *SettingsHandler) UpdateTelegramSettings(c *gin.Context) {
	var req TelegramSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	token := strings.TrimSpace(req.BotToken)
	chatID := strings.TrimSpace(req.ChatID)
	if token == "" || chatID == "" {
		httperr.BadRequest(c, "missing_settings", "Bot token and chat id are both required.")
		return
	}

	if err := h.kv.Set(c.Request.Context(), notify.KeyBotToken, token); err != nil {
		httperr.Internal(c, "storage_error", "Failed to save settings.")
		return
	}
	if err := h.kv.Set(c.Request.Context(), notify.KeyChatID, chatID); err != nil {
		httperr.Internal(c, "storage_error", "Failed to save settings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// TestTelegram sends a test message through the configured bot. Unlike the
// booking dispatcher this surfaces delivery errors, so staff get immediate
// feedback on bad credentials.
func (h *SettingsHandler) TestTelegram(c *gin.Context) {
	if err := h.telegram.TestConnection(c.Request.Context()); err != nil {
		if errors.Is(err, notify.ErrNotConfigured) {
			httperr.BadRequest(c, "telegram_not_configured", "Bot token and chat id must be saved first.")
			return
		}
		httperr.BadRequest(c, "telegram_send_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

func (h *SettingsHandler) TelegramBotInfo(c *gin.Context) {
	info, err := h.telegram.BotInfo(c.Request.Context())
	if err != nil {
		if errors.Is(err, notify.ErrNotConfigured) {
			httperr.BadRequest(c, "telegram_not_configured", "Bot token and chat id must be saved first.")
			return
		}
		httperr.BadRequest(c, "telegram_send_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, info)
}

// ======================================================
// NOTIFICATION ACTIONS
// ======================================================

func (h *SettingsHandler) SendDailySummary(c *gin.Context) {
	if err := h.summary.Execute(c.Request.Context()); err != nil {
		if errors.Is(err, notify.ErrNotConfigured) {
			httperr.BadRequest(c, "telegram_not_configured", "Bot token and chat id must be saved first.")
			return
		}
		httperr.BadRequest(c, "telegram_send_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

func (h *SettingsHandler) SendReminders(c *gin.Context) {
	count, err := h.reminders.Execute(c.Request.Context())
	if err != nil {
		if errors.Is(err, notify.ErrNotConfigured) {
			httperr.BadRequest(c, "telegram_not_configured", "Bot token and chat id must be saved first.")
			return
		}
		httperr.BadRequest(c, "telegram_send_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent", "count": count})
}

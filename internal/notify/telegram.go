package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/su-physio/clinic-scheduler/internal/kvstore"
	"github.com/su-physio/clinic-scheduler/internal/logger"
)

// Durable keys holding the gateway configuration, set from the staff
// settings screen.
const (
	KeyBotToken = "telegram_bot_token"
	KeyChatID   = "telegram_chat_id"
)

const defaultAPIBase = "https://api.telegram.org"

// ErrNotConfigured reports a send attempted before both the bot token and
// chat id are stored.
var ErrNotConfigured = errors.New("telegram not configured")

// TelegramNotifier posts sendMessage calls to the Bot API with HTML parse
// mode. One attempt per message, no retry.
type TelegramNotifier struct {
	kv      kvstore.Store
	client  *http.Client
	apiBase string
}

func NewTelegramNotifier(kv kvstore.Store) *TelegramNotifier {
	return &TelegramNotifier{
		kv:      kv,
		client:  &http.Client{Timeout: 10 * time.Second},
		apiBase: defaultAPIBase,
	}
}

// NewTelegramNotifierWithBase exists for tests pointing at a local server.
func NewTelegramNotifierWithBase(kv kvstore.Store, apiBase string) *TelegramNotifier {
	n := NewTelegramNotifier(kv)
	n.apiBase = apiBase
	return n
}

func (t *TelegramNotifier) credentials(ctx context.Context) (token, chatID string, err error) {
	token, err = t.kv.Get(ctx, KeyBotToken)
	if errors.Is(err, kvstore.ErrNotFound) {
		return "", "", ErrNotConfigured
	}
	if err != nil {
		return "", "", err
	}

	chatID, err = t.kv.Get(ctx, KeyChatID)
	if errors.Is(err, kvstore.ErrNotFound) {
		return "", "", ErrNotConfigured
	}
	if err != nil {
		return "", "", err
	}

	if token == "" || chatID == "" {
		return "", "", ErrNotConfigured
	}
	return token, chatID, nil
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

func (t *TelegramNotifier) Send(ctx context.Context, text string) error {
	token, chatID, err := t.credentials(ctx)
	if errors.Is(err, ErrNotConfigured) {
		logger.Log.Debug("telegram not configured, skipping notification")
		return nil
	}
	if err != nil {
		return err
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("telegram: %s", result.Description)
	}
	return nil
}

// TestConnection delivers the settings-screen test message. Unlike Send it
// surfaces the unconfigured state, because the caller explicitly asked.
func (t *TelegramNotifier) TestConnection(ctx context.Context) error {
	if _, _, err := t.credentials(ctx); err != nil {
		return err
	}
	return t.Send(ctx, BuildTestMessage())
}

// BotInfo describes the configured bot, from getMe.
type BotInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"first_name"`
}

func (t *TelegramNotifier) BotInfo(ctx context.Context) (*BotInfo, error) {
	token, _, err := t.credentials(ctx)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/bot%s/getMe", t.apiBase, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, fmt.Errorf("telegram: %s", result.Description)
	}

	var info BotInfo
	if err := json.Unmarshal(result.Result, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

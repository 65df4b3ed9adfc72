package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/su-physio/clinic-scheduler/internal/kvstore"
	"github.com/su-physio/clinic-scheduler/internal/models"
)

func configuredStore(t *testing.T) kvstore.Store {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, KeyBotToken, "test-token"))
	require.NoError(t, kv.Set(ctx, KeyChatID, "12345"))
	return kv
}

func TestSend_PostsSendMessage(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	n := NewTelegramNotifierWithBase(configuredStore(t), srv.URL)
	require.NoError(t, n.Send(context.Background(), "<b>hello</b>"))

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "12345", gotBody.ChatID)
	assert.Equal(t, "<b>hello</b>", gotBody.Text)
	assert.Equal(t, "HTML", gotBody.ParseMode)
}

func TestSend_UnconfiguredIsSilentNoop(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	n := NewTelegramNotifierWithBase(kvstore.NewMemoryStore(), srv.URL)

	assert.NoError(t, n.Send(context.Background(), "hello"))
	assert.False(t, called)
}

func TestSend_APIErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ok": false, "description": "Unauthorized"})
	}))
	defer srv.Close()

	n := NewTelegramNotifierWithBase(configuredStore(t), srv.URL)

	err := n.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized")
}

func TestTestConnection_UnconfiguredErrors(t *testing.T) {
	n := NewTelegramNotifier(kvstore.NewMemoryStore())

	err := n.TestConnection(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestBotInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getMe", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"ok": true,
			"result": map[string]any{
				"id":         99,
				"username":   "su_physio_bot",
				"first_name": "SU Physio",
			},
		})
	}))
	defer srv.Close()

	n := NewTelegramNotifierWithBase(configuredStore(t), srv.URL)

	info, err := n.BotInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(99), info.ID)
	assert.Equal(t, "su_physio_bot", info.Username)
	assert.Equal(t, "SU Physio", info.Name)
}

// recordingNotifier captures every delivered message.
type recordingNotifier struct {
	mu    sync.Mutex
	texts []string
}

func (n *recordingNotifier) Send(ctx context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.texts = append(n.texts, text)
	return nil
}

func (n *recordingNotifier) sent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.texts...)
}

func TestDispatcher_DeliversQueuedEvents(t *testing.T) {
	rec := &recordingNotifier{}
	d := NewDispatcher(rec)

	d.Dispatch(Event{Kind: KindNew, Booking: models.Booking{ID: 1, Name: "Aung Aung", Date: "2025-03-10", Time: "09:00", Status: "pending"}})
	d.Dispatch(Event{Kind: KindStatusUpdate, Booking: models.Booking{ID: 1, Name: "Aung Aung", Date: "2025-03-10", Time: "09:00", Status: "confirmed"}})

	assert.Eventually(t, func() bool {
		return len(rec.sent()) == 2
	}, time.Second, 10*time.Millisecond)

	texts := rec.sent()
	assert.Contains(t, texts[0], "လူနာအသစ်")
	assert.Contains(t, texts[1], "ပြောင်းလဲမှု")
}

// blockingNotifier never returns, so queued events pile up.
type blockingNotifier struct {
	release chan struct{}
}

func (n *blockingNotifier) Send(ctx context.Context, text string) error {
	<-n.release
	return nil
}

func TestDispatch_NeverBlocksOnFullQueue(t *testing.T) {
	block := &blockingNotifier{release: make(chan struct{})}
	d := NewDispatcher(block)
	defer close(block.release)

	done := make(chan struct{})
	go func() {
		// Queue capacity plus the one stuck in the worker, then some.
		for i := 0; i < 300; i++ {
			d.Dispatch(Event{Kind: KindNew, Booking: models.Booking{ID: int64(i)}})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
}

package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTelegramClient_SendMessage(t *testing.T) {
	t.Run("nil_client", func(t *testing.T) {
		var c *TelegramClient
		err := c.SendMessage(context.Background(), "msg")
		if err == nil || err.Error() != "telegram client is nil" {
			t.Errorf("expected nil client error, got %v", err)
		}
	})

	t.Run("missing_config", func(t *testing.T) {
		c := NewTelegramClient("", 0, "")
		err := c.SendMessage(context.Background(), "msg")
		if err == nil || err.Error() != "telegram token or chat_id missing" {
			t.Error("expected missing config error")
		}
	})

	t.Run("success", func(t *testing.T) {
		var got sendMessageRequest
		var path string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer ts.Close()

		c := NewTelegramClient("tok", 123, "PROD")
		c.baseURL = ts.URL
		err := c.SendMessage(context.Background(), "【每日效率摘要】")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/bottok/sendMessage" {
			t.Errorf("unexpected path %s", path)
		}
		if got.ChatID != 123 || got.Text != "[PROD] 【每日效率摘要】" {
			t.Errorf("unexpected payload: %+v", got)
		}
	})

	t.Run("server_error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"bad"}`))
		}))
		defer ts.Close()

		c := NewTelegramClient("tok", 123, "")
		c.baseURL = ts.URL
		err := c.SendMessage(context.Background(), "hello")
		if err == nil {
			t.Error("expected error for 400 status")
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		c := NewTelegramClient("tok", 123, "")
		c.baseURL = ts.URL
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := c.SendMessage(ctx, "hello"); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}

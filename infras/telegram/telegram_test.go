package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"barbershop/config"
	"barbershop/infras/otel/mocks"
	"barbershop/infras/telegram"
)

func newConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Notification.Telegram.BaseURL = baseURL
	cfg.Notification.Telegram.BotToken = "123:abc"
	cfg.Notification.Telegram.ChatID = "42"

	return cfg
}

func TestSendMessage(t *testing.T) {
	var received map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot123:abc/sendMessage", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := telegram.NewWithHTTPClient(newConfig(server.URL+"/"), mocks.NewOtel(), server.Client())

	err := client.SendMessage(context.Background(), "new booking")

	assert.NoError(t, err)
	assert.Equal(t, "42", received["chat_id"])
	assert.Equal(t, "new booking", received["text"])
}

func TestSendMessage_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer server.Close()

	client := telegram.NewWithHTTPClient(newConfig(server.URL), mocks.NewOtel(), server.Client())

	err := client.SendMessage(context.Background(), "hello")
	assert.ErrorContains(t, err, "chat not found")

	cfg := newConfig(server.URL)
	cfg.Notification.Telegram.ChatID = ""

	err = telegram.NewWithHTTPClient(cfg, mocks.NewOtel(), server.Client()).SendMessage(context.Background(), "hello")
	assert.ErrorIs(t, err, telegram.ErrNotConfigured)
}

package telegram

//go:generate go run go.uber.org/mock/mockgen -source=./telegram.go -destination=./mocks/telegram_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"barbershop/config"
	"barbershop/infras/otel"
	"barbershop/shared/constant"

	"github.com/rs/zerolog/log"
)

const defaultTimeout = 10 * time.Second

var ErrNotConfigured = errors.New("telegram bot token or chat id missing")

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Client posts plain text messages to the shop owner's chat.
type Client interface {
	SendMessage(ctx context.Context, text string) error
}

type clientImpl struct {
	baseURL  string
	botToken string
	chatID   string
	http     *http.Client
	otel     otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Client {
	timeout := time.Duration(cfg.Notification.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return NewWithHTTPClient(cfg, otl, otel.NewHTTPClient(timeout))
}

func NewWithHTTPClient(cfg *config.Config, otl otel.Otel, httpClient *http.Client) Client {
	return &clientImpl{
		baseURL:  strings.TrimRight(cfg.Notification.Telegram.BaseURL, "/"),
		botToken: cfg.Notification.Telegram.BotToken,
		chatID:   cfg.Notification.Telegram.ChatID,
		http:     httpClient,
		otel:     otl,
	}
}

func (c *clientImpl) SendMessage(ctx context.Context, text string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".telegram.SendMessage")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if c.botToken == "" || c.chatID == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendMessageRequest{ChatID: c.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("failed to call telegram api")

		return fmt.Errorf("failed to call telegram api: %w", err)
	}
	defer resp.Body.Close()

	var result sendMessageResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&result); decodeErr != nil {
		result.Description = decodeErr.Error()
	}

	if resp.StatusCode >= http.StatusMultipleChoices || !result.OK {
		return fmt.Errorf("telegram api responded with status %d: %s", resp.StatusCode, result.Description)
	}

	log.Info().Msg("telegram notification delivered")

	return nil
}

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TelegramClient 提供簡單的 sendMessage API 封裝，用於推送每日效率摘要。
type TelegramClient struct {
	token      string
	chatID     int64
	prefix     string
	baseURL    string
	httpClient *http.Client
}

func NewTelegramClient(token string, chatID int64, prefix string) *TelegramClient {
	return &TelegramClient{
		token:   token,
		chatID:  chatID,
		prefix:  prefix,
		baseURL: "https://api.telegram.org",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// SendMessage 將文字訊息推送到指定 chat。
func (c *TelegramClient) SendMessage(ctx context.Context, text string) error {
	if c == nil {
		return fmt.Errorf("telegram client is nil")
	}
	if c.token == "" || c.chatID == 0 {
		return fmt.Errorf("telegram token or chat_id missing")
	}

	fullText := text
	if c.prefix != "" {
		fullText = fmt.Sprintf("[%s] %s", c.prefix, text)
	}
	body, err := json.Marshal(sendMessageRequest{ChatID: c.chatID, Text: fullText, DisableWebPagePreview: true})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram send failed status=%d body=%s", resp.StatusCode, string(raw))
	}
	return nil
}

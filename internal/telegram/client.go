package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const userAgent = "CineBob/0.1.0"

// MaxMessageLength is Telegram's hard limit on message text.
const MaxMessageLength = 4096

// User is the Bot API user object (the fields we read).
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// Chat identifies the conversation a message belongs to.
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Message is an incoming chat message.
type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// Update is one long-poll result entry.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type sendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

type getUpdatesRequest struct {
	Offset  int64 `json:"offset,omitempty"`
	Timeout int   `json:"timeout,omitempty"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
	Parameters  *apiParameters  `json:"parameters,omitempty"`
}

type apiParameters struct {
	RetryAfter int `json:"retry_after,omitempty"`
}

// APIError is a non-ok Bot API response.
type APIError struct {
	Code        int
	Description string
	RetryAfter  time.Duration
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}

// Client talks to the Telegram Bot API for a single bot token.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

// ClientOption customizes client construction.
type ClientOption func(*Client)

// WithBaseURL points the client at a different API host (tests, proxies).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the HTTP client timeout. It must exceed the long-poll
// window passed to GetUpdates.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// NewClient builds a Bot API client.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		token:   token,
		baseURL: "https://api.telegram.org",
		client:  &http.Client{Timeout: 40 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetMe returns the bot's own identity, which doubles as a token check.
func (c *Client) GetMe(ctx context.Context) (User, error) {
	var user User
	if err := c.call(ctx, "getMe", nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// GetUpdates long-polls for updates at or after offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	req := getUpdatesRequest{Offset: offset, Timeout: int(timeout.Seconds())}
	var updates []Update
	if err := c.call(ctx, "getUpdates", req, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// SendMessage sends HTML-formatted reply text to a chat. Text beyond the
// API limit is truncated.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if len(text) > MaxMessageLength {
		text = text[:MaxMessageLength]
	}
	req := sendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	}
	return c.call(ctx, "sendMessage", req, nil)
}

func (c *Client) call(ctx context.Context, method string, payload any, result any) error {
	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s payload: %w", method, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	var api apiResponse
	if err := json.Unmarshal(raw, &api); err != nil {
		return fmt.Errorf("parse %s response (%d): %w", method, resp.StatusCode, err)
	}

	if !api.OK {
		apiErr := &APIError{Code: api.ErrorCode, Description: api.Description}
		if api.Parameters != nil && api.Parameters.RetryAfter > 0 {
			apiErr.RetryAfter = time.Duration(api.Parameters.RetryAfter) * time.Second
		}
		return apiErr
	}

	if result != nil && len(api.Result) > 0 {
		if err := json.Unmarshal(api.Result, result); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}
	return nil
}

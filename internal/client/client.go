package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/denmor86/upi-wallet/internal/logger"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - клиент API кошелька. Базовый адрес задаётся настройками,
// все запросы проходят через ограничитель частоты.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	limiter    *RateLimiter
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		limiter:    NewRateLimiter(),
	}
}

// Envelope - конверт ответа сервера кошелька
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// APIError - ошибка операции с текстом, пригодным для показа пользователю.
// Message берётся из ответа сервера, при его отсутствии - запасной текст операции.
type APIError struct {
	Op      string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// do выполняет запрос и разбирает конверт ответа. Ответ с кодом не 2xx
// превращается в APIError, повторных попыток не делается.
func (c *Client) do(ctx context.Context, method string, path string, body any, op string, fallback string) (*Envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &APIError{Op: op, Message: fallback, Err: err}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Op: op, Message: fallback, Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &APIError{Op: op, Message: fallback, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Request failed:", method, path, err)
		return nil, &APIError{Op: op, Message: fallback, Err: err}
	}
	defer resp.Body.Close()

	logger.Debug("Wallet API request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	var envelope Envelope
	// конверт разбираем терпимо: тело может быть пустым или неожиданной формы
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		envelope = Envelope{}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.BlockFor(ParseRetryAfter(resp.Header))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := envelope.Message
		if message == "" {
			message = fallback
		}
		return nil, &APIError{Op: op, Message: message}
	}

	return &envelope, nil
}

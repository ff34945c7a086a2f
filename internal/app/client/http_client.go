package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"datareceiver/internal/app/client/config"
	"datareceiver/internal/domain/record"

	"golang.org/x/exp/slog"
)

// ErrServer оборачивает любой ответ сервера со статусом >= 400
var ErrServer = errors.New("ошибка сервера")

// StatusError несет статус и сообщение из поля error ответа
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: статус %d", ErrServer, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", ErrServer, e.Message)
}

func (e *StatusError) Unwrap() error { return ErrServer }

type submitRequest struct {
	ID       string `json:"id"`
	Origin   string `json:"origin"`
	MimeData string `json:"mime_data"`
}

type submitResponse struct {
	Message string         `json:"message"`
	Data    *record.Record `json:"data"`
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	return &httpClient{
		client:    &http.Client{Timeout: cfg.Timeout},
		log:       log,
		baseURL:   cfg.BaseURL(),
		userAgent: "DataReceiver-Client/1.0",
	}
}

// HealthCheck проверяет доступность сервера и его хранилища
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// Submit отправляет запись, сервер назначает ей datetime
func (h *httpClient) Submit(ctx context.Context, sub record.Submission) (*record.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/data", submitRequest{
		ID:       sub.ID,
		Origin:   sub.Origin,
		MimeData: sub.MimeData,
	})
	if err != nil {
		return nil, err
	}

	var created submitResponse
	if err := h.parseResponse(resp, &created); err != nil {
		return nil, err
	}

	return created.Data, nil
}

// List запрашивает записи в JSON, пустой фильтр возвращает все
func (h *httpClient) List(ctx context.Context, filter record.Filter) ([]record.Record, error) {
	q := url.Values{}
	if filter.Origin != "" {
		q.Set("origin", filter.Origin)
	}
	if filter.Date != "" {
		q.Set("date", filter.Date)
	}

	path := "/data"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	records := []record.Record{}
	if err := h.parseResponse(resp, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("сервер недоступен: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"request_id", resp.Header.Get("X-Request-ID"),
	)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &errResp)
		return &StatusError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

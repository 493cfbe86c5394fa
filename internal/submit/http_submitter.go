package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
)

// ErrServerRejected — авторитетная сторона отказала в размещении заказа.
var ErrServerRejected = errors.New("order rejected by server")

// ServerRejectedError — структурированный отказ; Message показывается
// пользователю дословно.
type ServerRejectedError struct {
	StatusCode int
	Message    string
}

func (e *ServerRejectedError) Error() string {
	return fmt.Sprintf("order rejected: status=%d message=%q", e.StatusCode, e.Message)
}

func (e *ServerRejectedError) Unwrap() error { return ErrServerRejected }

// Проверка, что HTTPSubmitter удовлетворяет порту OrderSubmitter.
var _ ports.OrderSubmitter = (*HTTPSubmitter)(nil)

// HTTPSubmitter — отправка заказа по HTTP. Таймаут конфигурируемый;
// автоповторов нет, отмена после отправки не предусмотрена — вызывающая
// сторона дожидается определённого исхода.
type HTTPSubmitter struct {
	url    string
	client *http.Client
}

// NewHTTPSubmitter — DI-конструктор; timeout <= 0 значит таймаут транспорта по умолчанию.
func NewHTTPSubmitter(url string, timeout time.Duration) *HTTPSubmitter {
	return &HTTPSubmitter{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// rejection — тело структурированного отказа принимающей стороны.
type rejection struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Submit — POST заказа. 2xx — непрозрачное подтверждение; 4xx — отказ с
// текстом сервера (ServerRejectedError); прочее — обычная ошибка транспорта.
func (s *HTTPSubmitter) Submit(ctx context.Context, payload domain.OrderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return &ServerRejectedError{
			StatusCode: resp.StatusCode,
			Message:    rejectionMessage(raw),
		}
	}

	return fmt.Errorf("submit order: unexpected status %d", resp.StatusCode)
}

// rejectionMessage — текст отказа из тела ответа; сырое тело как запасной вариант.
func rejectionMessage(raw []byte) string {
	var r rejection
	if err := json.Unmarshal(raw, &r); err == nil {
		if r.Message != "" {
			return r.Message
		}
		if r.Error != "" {
			return r.Error
		}
	}
	return string(raw)
}

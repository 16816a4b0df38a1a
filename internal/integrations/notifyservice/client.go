package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с NotifyService (email уведомления посетителям и менеджерам)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotifyService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingNotification отправляет уведомление о созданной брони
func (c *Client) SendBookingNotification(ctx context.Context, n *BookingNotification) error {
	url := fmt.Sprintf("%s/internal/notifications/booking", c.baseURL)

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	return nil
}

// SendBookingNotificationWithGracefulDegradation отправляет уведомление с graceful degradation
// Недоступность NotifyService не должна ронять бронирование: ошибка отправки
// переводится в ErrServiceDegraded, который вызывающая сторона только логирует
func (c *Client) SendBookingNotificationWithGracefulDegradation(ctx context.Context, n *BookingNotification) error {
	c.log.Info("Sending booking notification for slot_id=%d, manager_id=%d", n.SlotID, n.ManagerID)

	if err := c.SendBookingNotification(ctx, n); err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("NotifyService unavailable, applying graceful degradation for slot_id=%d: %v", n.SlotID, err)
		return fmt.Errorf("%w: slot_id=%d, error=%v", ErrServiceDegraded, n.SlotID, err)
	}

	c.log.Info("Booking notification sent for slot_id=%d", n.SlotID)
	return nil
}

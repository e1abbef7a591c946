package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для отправки уведомлений о записях во внешний webhook
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmed отправляет уведомление о подтвержденной записи
func (c *Client) SendBookingConfirmed(ctx context.Context, n *BookingNotification) error {
	url := fmt.Sprintf("%s/hooks/booking-confirmed", c.baseURL)

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
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

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// SendBookingConfirmedAsync отправляет уведомление в фоне, не блокируя вызывающую сторону.
// Ошибки доставки только логируются: запись уже создана, и сбой канала
// уведомлений не должен её откатывать.
func (c *Client) SendBookingConfirmedAsync(n *BookingNotification) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
		defer cancel()

		if err := c.SendBookingConfirmed(ctx, n); err != nil {
			c.log.Error("Failed to deliver booking notification for booking_id=%d: %v", n.BookingID, err)
			return
		}

		c.log.Info("Booking notification delivered for booking_id=%d", n.BookingID)
	}()
}

package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Client клиент для отправки писем через SendGrid
type Client struct {
	apiKey    string
	fromEmail string
	fromName  string
	log       Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(apiKey, fromEmail, fromName string, log Logger) *Client {
	return &Client{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		log:       log,
	}
}

// Send отправляет письмо с текстовой и HTML-версией
func (c *Client) Send(toEmail, toName, subject, plainText, htmlContent string) error {
	if c.apiKey == "" || c.fromEmail == "" {
		return fmt.Errorf("%w: api key or from address is empty", ErrNotConfigured)
	}

	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, response.StatusCode, response.Body)
	}

	c.log.Info("Email sent to %s (subject: %s), status: %d", toEmail, subject, response.StatusCode)
	return nil
}

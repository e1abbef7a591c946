package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, когда не задан API-ключ или адрес отправителя
	ErrNotConfigured = errors.New("mailer client: not configured")

	// ErrSendFailed возвращается при ошибке отправки письма
	ErrSendFailed = errors.New("mailer client: failed to send email")
)

package notifier

// BookingNotification данные подтверждения записи для отправки в канал уведомлений
type BookingNotification struct {
	BookingID    int64    `json:"booking_id"`
	CustomerName string   `json:"customer_name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Date         string   `json:"date"`
	Location     string   `json:"location"`
	Professional string   `json:"professional"`
	Services     []string `json:"services"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

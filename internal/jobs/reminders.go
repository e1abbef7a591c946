package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/petsas/appointment-service/internal/domain"
	"github.com/petsas/appointment-service/pkg/types"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetByDateAndStatus(ctx context.Context, date types.DateString, status domain.BookingStatus) ([]*domain.Booking, error)
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

// Mailer интерфейс почтового клиента
type Mailer interface {
	Send(toEmail, toName, subject, plainText, htmlContent string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ReminderJob периодическая задача напоминаний: находит неотмененные записи
// на завтра и по каждой отправляет письмо клиенту. Сбой одной отправки
// не прерывает остальные.
type ReminderJob struct {
	bookingRepo BookingRepository
	profileRepo ProfileRepository
	mailer      Mailer
	schedule    string
	timeout     time.Duration
	logger      Logger

	cron *cron.Cron
}

// NewReminderJob создает задачу напоминаний с cron-расписанием (например, "0 9 * * *")
func NewReminderJob(
	bookingRepo BookingRepository,
	profileRepo ProfileRepository,
	mailer Mailer,
	schedule string,
	logger Logger,
) *ReminderJob {
	return &ReminderJob{
		bookingRepo: bookingRepo,
		profileRepo: profileRepo,
		mailer:      mailer,
		schedule:    schedule,
		timeout:     time.Minute,
		logger:      logger,
	}
}

// Start регистрирует задачу в планировщике и запускает его
func (j *ReminderJob) Start() error {
	j.cron = cron.New()

	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return fmt.Errorf("jobs: failed to schedule reminders: %w", err)
	}

	j.cron.Start()
	j.logger.Info("Reminder job scheduled: %s", j.schedule)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущего запуска
func (j *ReminderJob) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
	j.logger.Info("Reminder job stopped")
}

func (j *ReminderJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	tomorrow := types.NewDateString(time.Now().AddDate(0, 0, 1))
	j.logger.Info("Reminders: checking bookings for %s", tomorrow)

	sent := 0
	for _, status := range domain.ActiveStatuses {
		bookings, err := j.bookingRepo.GetByDateAndStatus(ctx, tomorrow, status)
		if err != nil {
			j.logger.Error("Reminders: failed to list %s bookings for %s: %v", status, tomorrow, err)
			continue
		}

		for _, booking := range bookings {
			if err := j.sendReminder(ctx, booking); err != nil {
				j.logger.Error("Reminders: failed to send reminder for booking id=%d: %v", booking.ID, err)
				continue
			}
			sent++
		}
	}

	j.logger.Info("Reminders: sent %d reminders for %s", sent, tomorrow)
}

func (j *ReminderJob) sendReminder(ctx context.Context, booking *domain.Booking) error {
	profile, err := j.profileRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if profile.Email == "" {
		j.logger.Warn("Reminders: profile id=%s has no email, skipping booking id=%d", profile.ID, booking.ID)
		return nil
	}

	subject := fmt.Sprintf("Напоминание о записи на %s", booking.Date)
	plainText := fmt.Sprintf(
		"Здравствуйте, %s!\n\nНапоминаем о вашей записи на %s.\nУслуги: %s.\n\nЖдем вас!",
		profile.FullName, booking.Date, strings.Join(booking.ServiceIDs, ", "),
	)
	htmlContent := fmt.Sprintf(
		"<p>Здравствуйте, %s!</p><p>Напоминаем о вашей записи на <b>%s</b>.</p><p>Услуги: %s.</p><p>Ждем вас!</p>",
		profile.FullName, booking.Date, strings.Join(booking.ServiceIDs, ", "),
	)

	return j.mailer.Send(profile.Email, profile.FullName, subject, plainText, htmlContent)
}

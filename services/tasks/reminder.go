package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"pirouette/config"
	"pirouette/models"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds an asynq task that fires at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues booking reminders.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking models.Booking, serviceName string) error
}

// AsynqReminderScheduler implements ReminderScheduler over the Redis-backed
// asynq queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{client: client}
}

// ScheduleBookingReminder queues a reminder for 9am the day before the
// booking. Bookings inside that window get no reminder.
func (s *AsynqReminderScheduler) ScheduleBookingReminder(booking models.Booking, serviceName string) error {
	date, err := time.Parse("2006-01-02", booking.Date)
	if err != nil {
		return fmt.Errorf("invalid booking date %q: %w", booking.Date, err)
	}

	fireAt := date.AddDate(0, 0, -1).Add(9 * time.Hour)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		DancerID:  booking.DancerID,
		Title:     "Styling appointment tomorrow",
		Body:      fmt.Sprintf("%s at %s, %s", serviceName, booking.StartTime, booking.Date),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, opts...)
	return err
}

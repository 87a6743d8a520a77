package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"barberflow/config"
	"barberflow/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Scheduler enqueues delayed reminder tasks for upcoming appointments.
type Scheduler struct {
	client *asynq.Client
	logger *zap.Logger
}

// NewScheduler creates a scheduler backed by the reminder queue Redis DB.
func NewScheduler(logger *zap.Logger) *Scheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &Scheduler{client: client, logger: logger}
}

// EnqueueAppointmentReminders schedules the 24h and 2h reminders for an
// appointment. Reminders whose fire time is already in the past are skipped.
func (s *Scheduler) EnqueueAppointmentReminders(appt *models.Appointment) error {
	type slot struct {
		kind  string
		ahead time.Duration
	}
	slots := []slot{
		{kind: "24h", ahead: 24 * time.Hour},
		{kind: "2h", ahead: 2 * time.Hour},
	}

	now := time.Now()
	for _, sl := range slots {
		fireAt := appt.StartTime.Add(-sl.ahead)
		if !fireAt.After(now) {
			continue
		}

		payload, err := json.Marshal(models.ReminderPayload{
			AppointmentID: appt.ID,
			Kind:          sl.kind,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal reminder payload: %w", err)
		}

		task := asynq.NewTask(TypeReminderSend, payload)
		info, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3))
		if err != nil {
			return fmt.Errorf("failed to enqueue %s reminder: %w", sl.kind, err)
		}
		s.logger.Info("reminder scheduled",
			zap.String("appointmentId", appt.ID),
			zap.String("kind", sl.kind),
			zap.Time("fireAt", fireAt),
			zap.String("taskId", info.ID))
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *Scheduler) Close() error {
	return s.client.Close()
}

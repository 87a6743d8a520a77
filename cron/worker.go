package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"barberflow/config"
	customerRepo "barberflow/database/repository/customer"
	"barberflow/models"
	"barberflow/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// WorkerDeps are the collaborators the reminder worker needs to compose
// and deliver a reminder message.
type WorkerDeps struct {
	Appointments AppointmentLoader
	Customers    customerRepo.CustomerRepository
	Notifier     notification.NotificationService
}

// AppointmentLoader is the slice of the appointment repository the worker uses.
type AppointmentLoader interface {
	GetByID(id string) (*models.Appointment, error)
	MarkReminderSent(id string) error
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(deps WorkerDeps) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(deps))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(deps WorkerDeps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		appt, err := deps.Appointments.GetByID(p.AppointmentID)
		if err != nil {
			log.Printf("[ReminderHandler] Failed to load appointment %s: %v", p.AppointmentID, err)
			return err
		}
		if appt == nil || appt.Status == models.AppointmentCancelled {
			// Appointment gone or cancelled since scheduling; nothing to do.
			return nil
		}

		cust, err := deps.Customers.GetByID(appt.CustomerID)
		if err != nil {
			log.Printf("[ReminderHandler] Failed to load customer %d: %v", appt.CustomerID, err)
			return err
		}
		if cust == nil || !cust.AllowNotifications {
			// Customer gone or opted out; drop the reminder.
			return nil
		}

		body := reminderBody(appt, p.Kind)
		log.Printf("[ReminderHandler] Sending %s reminder for appointment %s to %s", p.Kind, appt.ID, cust.PhoneNumber)

		if err := deps.Notifier.SendWhatsAppText(ctx, cust.PhoneNumber, body); err != nil {
			log.Printf("[ReminderHandler] Failed to send reminder: %v", err)
			return err
		}

		if p.Kind == "2h" {
			if err := deps.Appointments.MarkReminderSent(appt.ID); err != nil {
				log.Printf("[ReminderHandler] Failed to mark reminder sent for %s: %v", appt.ID, err)
			}
		}
		return nil
	}
}

func reminderBody(appt *models.Appointment, kind string) string {
	when := appt.StartTime.Format("02.01.2006 15:04")
	if kind == "2h" {
		return fmt.Sprintf("Hatırlatma: randevunuz bugün saat %s'te. Görüşmek üzere!", appt.StartTime.Format("15:04"))
	}
	return fmt.Sprintf("Hatırlatma: %s tarihinde randevunuz var.", when)
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}

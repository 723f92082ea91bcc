package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"lumibelle/config"
	appointmentRepo "lumibelle/database/repository/appointment"
	"lumibelle/models"
	"lumibelle/services/notification"
	"lumibelle/services/tasks"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(ledger appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) {
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(ledger, notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask dispatches a reminder if the appointment is still
// active at fire time. Cancelled or completed appointments are dropped
// silently; the enqueue side does not revoke tasks.
func handleReminderTask(ledger appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		appt, err := ledger.GetByID(ctx, p.AppointmentID)
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			log.Printf("[ReminderHandler] appointment %s no longer exists, dropping reminder", p.AppointmentID)
			return nil
		}
		if err != nil {
			return err
		}
		if !appt.IsActive() {
			log.Printf("[ReminderHandler] appointment %s is %s, dropping reminder", appt.ID, appt.Status)
			return nil
		}

		if err := notifSvc.SendAppointmentReminder(ctx, appt); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for %s: %v", appt.ID, err)
			return err
		}
		return nil
	}
}

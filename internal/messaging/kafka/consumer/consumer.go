package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/events"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/message"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeTaskLifecycle turns task_assigned events into admin notification
// messages so the company sees the fan-out result in its inbox.
func ConsumeTaskLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	messageService message.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.task_lifecycle")
	log.Info("task lifecycle consumer started")

	admin := domain.Actor{Type: domain.PrincipalAdmin}

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("task lifecycle consumer stopped")
				return
			}
			log.Error("fetch task lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.TaskAssignedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode task_assigned event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = messageService.Send(ctx, admin, message.SendMessageRequest{
			ReceiverID:  event.CompanyID,
			MessageText: notificationText(event),
		})
		if err != nil {
			log.Error("send task notification failed",
				zap.String("task_id", event.TaskID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit task lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("task notification sent from task_assigned event",
			zap.String("task_id", event.TaskID),
			zap.String("company_id", event.CompanyID),
		)
	}
}

func notificationText(event events.TaskAssignedEvent) string {
	switch event.AssignedToType {
	case "branch":
		return fmt.Sprintf("Task %s assigned to branch %s (%d assignees).",
			event.TaskID, event.AssignedToID, event.AssigneeCount)
	case "employee":
		return fmt.Sprintf("Task %s assigned to employee %s.", event.TaskID, event.AssignedToID)
	default:
		return fmt.Sprintf("Task %s assigned company-wide.", event.TaskID)
	}
}

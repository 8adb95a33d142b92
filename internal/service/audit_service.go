package service

import (
	"context"
	"encoding/json"

	"smart-kitchen-be/internal/dto"
	"smart-kitchen-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IAuditService records door access decisions on an in-process bus and
// drains them to the audit log. Recording never blocks or fails the
// door check itself.
type IAuditService interface {
	RecordAccess(ctx context.Context, record dto.AccessAuditMessage)
	Consume(ctx context.Context) error
}

type auditService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	auditLog  logger.ILogger
	log       logger.ILogger
}

func NewAuditService(
	pubSub *gochannel.GoChannel,
	topicName string,
	auditLog logger.ILogger,
	log logger.ILogger,
) IAuditService {
	return &auditService{
		pubSub:    pubSub,
		topicName: topicName,
		auditLog:  auditLog,
		log:       log,
	}
}

func (as *auditService) RecordAccess(ctx context.Context, record dto.AccessAuditMessage) {
	payload, err := json.Marshal(record)
	if err != nil {
		as.log.Error("audit", "failed to marshal access record", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := as.pubSub.Publish(as.topicName, msg); err != nil {
		as.log.Error("audit", "failed to publish access record", map[string]interface{}{"error": err.Error()})
	}
}

func (as *auditService) Consume(ctx context.Context) error {
	messages, err := as.pubSub.Subscribe(ctx, as.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			as.processMessage(msg)
		}
	}()

	return nil
}

func (as *auditService) processMessage(msg *message.Message) {
	var record dto.AccessAuditMessage
	if err := json.Unmarshal(msg.Payload, &record); err != nil {
		as.log.Error("audit", "failed to unmarshal access record", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	as.auditLog.Info("door", "access check", map[string]interface{}{
		"member_isic": record.MemberIsic,
		"authorized":  record.Authorized,
		"reason":      record.Reason,
		"checked_at":  record.CheckedAt,
	})
	msg.Ack()
}

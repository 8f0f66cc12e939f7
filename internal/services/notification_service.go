package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/souqplus/api/internal/models"
)

type NotificationService struct {
	notificationsRepo models.NotificationRepo
}

func NewNotificationService(notificationsRepo models.NotificationRepo) *NotificationService {
	return &NotificationService{notificationsRepo: notificationsRepo}
}

func (ns *NotificationService) List(ctx context.Context, userId uuid.UUID) ([]*models.Notification, int, error) {
	if userId == uuid.Nil {
		return nil, 0, fmt.Errorf("invalid user ID")
	}
	notifications, err := ns.notificationsRepo.ListByUser(ctx, userId)
	if err != nil {
		return nil, 0, err
	}
	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}
	return notifications, unread, nil
}

func (ns *NotificationService) MarkRead(ctx context.Context, id, userId uuid.UUID) error {
	if id == uuid.Nil || userId == uuid.Nil {
		return fmt.Errorf("invalid notification or user ID")
	}
	return ns.notificationsRepo.MarkRead(ctx, id, userId)
}

func (ns *NotificationService) MarkAllRead(ctx context.Context, userId uuid.UUID) error {
	if userId == uuid.Nil {
		return fmt.Errorf("invalid user ID")
	}
	return ns.notificationsRepo.MarkAllRead(ctx, userId)
}

package models

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationMessage NotificationType = "message"
	NotificationOffer   NotificationType = "offer"
	NotificationListing NotificationType = "listing"
	NotificationSystem  NotificationType = "system"
)

type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

type NotificationRepo interface {
	ListByUser(ctx context.Context, userId uuid.UUID) ([]*Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userId uuid.UUID) error
	MarkAllRead(ctx context.Context, userId uuid.UUID) error
}

type MemoryNotifications struct {
	mu            sync.RWMutex
	notifications []*Notification
}

func NewMemoryNotifications(notifications []*Notification) *MemoryNotifications {
	return &MemoryNotifications{notifications: notifications}
}

func (mn *MemoryNotifications) ListByUser(ctx context.Context, userId uuid.UUID) ([]*Notification, error) {
	mn.mu.RLock()
	defer mn.mu.RUnlock()
	var out []*Notification
	for _, n := range mn.notifications {
		if n.UserID == userId {
			out = append(out, n)
		}
	}
	return out, nil
}

func (mn *MemoryNotifications) MarkRead(ctx context.Context, id uuid.UUID, userId uuid.UUID) error {
	mn.mu.Lock()
	defer mn.mu.Unlock()
	for _, n := range mn.notifications {
		if n.ID == id && n.UserID == userId {
			n.IsRead = true
			return nil
		}
	}
	return fmt.Errorf("notification %s not found", id)
}

func (mn *MemoryNotifications) MarkAllRead(ctx context.Context, userId uuid.UUID) error {
	mn.mu.Lock()
	defer mn.mu.Unlock()
	for _, n := range mn.notifications {
		if n.UserID == userId {
			n.IsRead = true
		}
	}
	return nil
}

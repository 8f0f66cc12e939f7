package models

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeOffer MessageType = "offer"
	MessageTypeImage MessageType = "image"
)

type Message struct {
	ID             uuid.UUID   `json:"id"`
	ConversationID uuid.UUID   `json:"conversation_id"`
	SenderID       uuid.UUID   `json:"sender_id"`
	ReceiverID     uuid.UUID   `json:"receiver_id"`
	Content        string      `json:"content"`
	Type           MessageType `json:"type"`
	Timestamp      time.Time   `json:"timestamp"`
	IsRead         bool        `json:"is_read"`
}

type Conversation struct {
	ID           uuid.UUID  `json:"id"`
	Participants []User     `json:"participants"`
	LastMessage  *Message   `json:"last_message,omitempty"`
	UnreadCount  int        `json:"unread_count"`
	ListingID    *uuid.UUID `json:"listing_id,omitempty"`
}

type MessageRepo interface {
	ListConversations(ctx context.Context, userId uuid.UUID) ([]*Conversation, error)
	GetConversation(ctx context.Context, conversationId uuid.UUID) (*Conversation, error)
	GetMessages(ctx context.Context, conversationId uuid.UUID) ([]*Message, error)
	MarkConversationRead(ctx context.Context, conversationId uuid.UUID, userId uuid.UUID) error
	AppendMessage(ctx context.Context, msg *Message) error
}

// MemoryMessages holds conversations in process, seeded with mock data.
type MemoryMessages struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID]*Conversation
	messages      map[uuid.UUID][]*Message
}

func NewMemoryMessages(conversations []*Conversation, messages map[uuid.UUID][]*Message) *MemoryMessages {
	byID := make(map[uuid.UUID]*Conversation, len(conversations))
	for _, c := range conversations {
		byID[c.ID] = c
	}
	if messages == nil {
		messages = make(map[uuid.UUID][]*Message)
	}
	return &MemoryMessages{conversations: byID, messages: messages}
}

func (mm *MemoryMessages) ListConversations(ctx context.Context, userId uuid.UUID) ([]*Conversation, error) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	var out []*Conversation
	for _, conv := range mm.conversations {
		for _, p := range conv.Participants {
			if p.ID == userId {
				out = append(out, conv)
				break
			}
		}
	}
	// Most recent conversation first.
	sort.SliceStable(out, func(i, j int) bool {
		return lastActivity(out[i]).After(lastActivity(out[j]))
	})
	return out, nil
}

func lastActivity(c *Conversation) time.Time {
	if c.LastMessage != nil {
		return c.LastMessage.Timestamp
	}
	return time.Time{}
}

func (mm *MemoryMessages) GetConversation(ctx context.Context, conversationId uuid.UUID) (*Conversation, error) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.conversations[conversationId], nil
}

func (mm *MemoryMessages) GetMessages(ctx context.Context, conversationId uuid.UUID) ([]*Message, error) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.messages[conversationId], nil
}

func (mm *MemoryMessages) MarkConversationRead(ctx context.Context, conversationId uuid.UUID, userId uuid.UUID) error {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	conv, ok := mm.conversations[conversationId]
	if !ok {
		return fmt.Errorf("conversation %s not found", conversationId)
	}
	conv.UnreadCount = 0
	for _, msg := range mm.messages[conversationId] {
		if msg.ReceiverID == userId {
			msg.IsRead = true
		}
	}
	return nil
}

func (mm *MemoryMessages) AppendMessage(ctx context.Context, msg *Message) error {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	conv, ok := mm.conversations[msg.ConversationID]
	if !ok {
		return fmt.Errorf("conversation %s not found", msg.ConversationID)
	}
	mm.messages[msg.ConversationID] = append(mm.messages[msg.ConversationID], msg)
	conv.LastMessage = msg
	conv.UnreadCount++
	return nil
}

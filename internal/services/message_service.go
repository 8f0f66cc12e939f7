package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/souqplus/api/internal/models"
)

type MessageService struct {
	messagesRepo models.MessageRepo
}

func NewMessageService(messagesRepo models.MessageRepo) *MessageService {
	return &MessageService{messagesRepo: messagesRepo}
}

func (ms *MessageService) ListConversations(ctx context.Context, userId uuid.UUID) ([]*models.Conversation, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	return ms.messagesRepo.ListConversations(ctx, userId)
}

// OpenConversation returns the message history and clears the unread
// count, mirroring what opening the thread does in the app.
func (ms *MessageService) OpenConversation(ctx context.Context, conversationId, userId uuid.UUID) ([]*models.Message, error) {
	conv, err := ms.messagesRepo.GetConversation(ctx, conversationId)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, fmt.Errorf("conversation not found")
	}
	if !isParticipant(conv, userId) {
		return nil, fmt.Errorf("forbidden: not a participant in this conversation")
	}

	if err := ms.messagesRepo.MarkConversationRead(ctx, conversationId, userId); err != nil {
		return nil, err
	}
	return ms.messagesRepo.GetMessages(ctx, conversationId)
}

func (ms *MessageService) SendMessage(ctx context.Context, conversationId, senderId uuid.UUID, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("message content cannot be empty")
	}

	conv, err := ms.messagesRepo.GetConversation(ctx, conversationId)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, fmt.Errorf("conversation not found")
	}
	if !isParticipant(conv, senderId) {
		return nil, fmt.Errorf("forbidden: not a participant in this conversation")
	}

	var receiverId uuid.UUID
	for _, p := range conv.Participants {
		if p.ID != senderId {
			receiverId = p.ID
			break
		}
	}

	msg := &models.Message{
		ID:             uuid.New(),
		ConversationID: conversationId,
		SenderID:       senderId,
		ReceiverID:     receiverId,
		Content:        content,
		Type:           models.MessageTypeText,
		Timestamp:      time.Now(),
	}
	if err := ms.messagesRepo.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func isParticipant(conv *models.Conversation, userId uuid.UUID) bool {
	for _, p := range conv.Participants {
		if p.ID == userId {
			return true
		}
	}
	return false
}

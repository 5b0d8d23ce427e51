package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/pkg/mongo"
	"Agora/internal/repository"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const messagePageSize = 50

type MessageService interface {
	Send(ctx context.Context, senderID uint64, sendDTO *dto.MessageSendDTO) (*mongo.Message, error)
	Inbox(ctx context.Context, receiverID uint64) ([]*mongo.Message, error)
	Conversation(ctx context.Context, callerID uint64, peerID uint64) ([]*mongo.Message, error)
	MarkRead(ctx context.Context, callerID uint64, messageID string) error
}

type messageServiceImpl struct {
	messageRepo mongo.MessageRepo
	userRepo    repository.UserRepo
}

func NewMessageService(messageRepo mongo.MessageRepo, userRepo repository.UserRepo) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func (s *messageServiceImpl) Send(ctx context.Context, senderID uint64, sendDTO *dto.MessageSendDTO) (*mongo.Message, error) {
	receiver, err := s.userRepo.GetUserByID(ctx, sendDTO.ReceiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrUserNotFound
	}

	msg := &mongo.Message{
		SenderID:   senderID,
		ReceiverID: sendDTO.ReceiverID,
		Text:       sendDTO.Text,
		SendDate:   time.Now().UTC(),
	}
	if err = s.messageRepo.SaveMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *messageServiceImpl) Inbox(ctx context.Context, receiverID uint64) ([]*mongo.Message, error) {
	return s.messageRepo.GetInbox(ctx, receiverID, messagePageSize)
}

func (s *messageServiceImpl) Conversation(ctx context.Context, callerID uint64, peerID uint64) ([]*mongo.Message, error) {
	peer, err := s.userRepo.GetUserByID(ctx, peerID)
	if err != nil {
		return nil, err
	}
	if peer == nil {
		return nil, ErrUserNotFound
	}
	return s.messageRepo.GetConversation(ctx, callerID, peerID, messagePageSize)
}

func (s *messageServiceImpl) MarkRead(ctx context.Context, callerID uint64, messageID string) error {
	oid, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return ErrParamInvalid
	}
	found, err := s.messageRepo.MarkRead(ctx, oid, callerID)
	if err != nil {
		return err
	}
	if !found {
		return ErrMessageNotFound
	}
	return nil
}

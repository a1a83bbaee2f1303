package service

import (
	"context"

	"ai-answer-engine-be/internal/dto"
	"ai-answer-engine-be/internal/entity"
	"ai-answer-engine-be/internal/repository/contract"
	"ai-answer-engine-be/internal/repository/specification"
)

type IChatService interface {
	GetAll(ctx context.Context) ([]*dto.ChatSummary, error)
	Show(ctx context.Context, chatId string) (*dto.ShowChatResponse, error)
	Delete(ctx context.Context, chatId string) error
}

type chatService struct {
	chats    contract.ChatRepository
	messages contract.ChatMessageRepository
}

func NewChatService(chats contract.ChatRepository, messages contract.ChatMessageRepository) IChatService {
	return &chatService{
		chats:    chats,
		messages: messages,
	}
}

func (s *chatService) GetAll(ctx context.Context) ([]*dto.ChatSummary, error) {
	chats, err := s.chats.FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ChatSummary, 0, len(chats))
	for _, chat := range chats {
		result = append(result, chatToSummary(chat))
	}
	return result, nil
}

func (s *chatService) Show(ctx context.Context, chatId string) (*dto.ShowChatResponse, error) {
	chat, err := s.chats.FindOne(ctx, specification.Filter("id", chatId))
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, nil
	}

	messages, err := s.messages.FindAll(ctx,
		specification.ByChatID{ChatID: chatId},
		specification.OrderBy{Field: "seq"},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ShowChatResponse{
		Chat:     chatToSummary(chat),
		Messages: make([]dto.ChatMessageResponse, 0, len(messages)),
	}
	for _, msg := range messages {
		res.Messages = append(res.Messages, dto.ChatMessageResponse{
			MessageId: msg.MessageId,
			ChatId:    msg.ChatId,
			Role:      msg.Role,
			Content:   msg.Content,
			Sources:   msg.Metadata.Sources,
			CreatedAt: msg.CreatedAt,
		})
	}
	return res, nil
}

func (s *chatService) Delete(ctx context.Context, chatId string) error {
	chat, err := s.chats.FindOne(ctx, specification.Filter("id", chatId))
	if err != nil {
		return err
	}
	if chat == nil {
		return nil
	}

	if err := s.messages.DeleteByChatId(ctx, chatId); err != nil {
		return err
	}
	return s.chats.Delete(ctx, chatId)
}

func chatToSummary(chat *entity.Chat) *dto.ChatSummary {
	return &dto.ChatSummary{
		Id:        chat.Id,
		Title:     chat.Title,
		FocusMode: chat.FocusMode,
		Files:     chat.Files,
		CreatedAt: chat.CreatedAt,
	}
}

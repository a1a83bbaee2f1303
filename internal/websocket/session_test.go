package websocket

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-answer-engine-be/internal/entity"
	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/internal/repository/specification"
)

// In-memory repositories mimicking the persistence contracts, with the same
// monotonic seq assignment the database provides.

type memChatRepo struct {
	chats map[string]*entity.Chat
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{chats: map[string]*entity.Chat{}}
}

func (r *memChatRepo) Create(ctx context.Context, chat *entity.Chat) error {
	r.chats[chat.Id] = chat
	return nil
}

func (r *memChatRepo) Update(ctx context.Context, chat *entity.Chat) error {
	r.chats[chat.Id] = chat
	return nil
}

func (r *memChatRepo) Delete(ctx context.Context, id string) error {
	delete(r.chats, id)
	return nil
}

func (r *memChatRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error) {
	for _, spec := range specs {
		if f, ok := spec.(specification.FilterBy); ok && f.Field == "id" {
			return r.chats[f.Value.(string)], nil
		}
	}
	return nil, nil
}

func (r *memChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error) {
	var out []*entity.Chat
	for _, c := range r.chats {
		out = append(out, c)
	}
	return out, nil
}

type memMessageRepo struct {
	messages []*entity.ChatMessage
	nextSeq  int64
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{}
}

func (r *memMessageRepo) Create(ctx context.Context, msg *entity.ChatMessage) error {
	r.nextSeq++
	msg.Seq = r.nextSeq
	r.messages = append(r.messages, msg)
	return nil
}

func (r *memMessageRepo) DeleteByChatId(ctx context.Context, chatId string) error {
	kept := r.messages[:0]
	for _, m := range r.messages {
		if m.ChatId != chatId {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}

func (r *memMessageRepo) DeleteAfterSeq(ctx context.Context, chatId string, seq int64) error {
	kept := r.messages[:0]
	for _, m := range r.messages {
		if m.ChatId == chatId && m.Seq > seq {
			continue
		}
		kept = append(kept, m)
	}
	r.messages = kept
	return nil
}

func (r *memMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	chatId, messageId := "", ""
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByChatID:
			chatId = s.ChatID
		case specification.ByMessageID:
			messageId = s.MessageID
		}
	}
	for _, m := range r.messages {
		if m.ChatId == chatId && m.MessageId == messageId {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	return r.messages, nil
}

func newTestSession(chats *memChatRepo, messages *memMessageRepo) *Session {
	return NewSession(nil, nil, nil, nil, chats, messages, logger.NewNopLogger())
}

func query(messageId, content string) *inboundMessage {
	return &inboundMessage{
		Type: "message",
		Message: innerMsg{
			MessageId: messageId,
			ChatId:    "chat-1",
			Content:   content,
		},
		FocusMode: "webSearch",
	}
}

func TestReconcileCreatesChatAndHumanMessage(t *testing.T) {
	chats, messages := newMemChatRepo(), newMemMessageRepo()
	s := newTestSession(chats, messages)

	err := s.reconcileHistory(context.Background(), query("m1", "first question"), "webSearch")

	require.NoError(t, err)
	require.NotNil(t, chats.chats["chat-1"])
	assert.Equal(t, "first question", chats.chats["chat-1"].Title)
	assert.Equal(t, "webSearch", chats.chats["chat-1"].FocusMode)
	require.Len(t, messages.messages, 1)
	assert.Equal(t, "user", messages.messages[0].Role)
	assert.Equal(t, "m1", messages.messages[0].MessageId)
}

func TestReconcileResubmissionTruncatesLaterMessages(t *testing.T) {
	chats, messages := newMemChatRepo(), newMemMessageRepo()
	s := newTestSession(chats, messages)
	ctx := context.Background()

	// first exchange: human m1, assistant a1, human m2, assistant a2
	require.NoError(t, s.reconcileHistory(ctx, query("m1", "q1"), "webSearch"))
	require.NoError(t, messages.Create(ctx, &entity.ChatMessage{MessageId: "a1", ChatId: "chat-1", Role: "assistant"}))
	require.NoError(t, s.reconcileHistory(ctx, query("m2", "q2"), "webSearch"))
	require.NoError(t, messages.Create(ctx, &entity.ChatMessage{MessageId: "a2", ChatId: "chat-1", Role: "assistant"}))
	require.Len(t, messages.messages, 4)

	// client edits m1 and regenerates: everything after m1 is dropped
	require.NoError(t, s.reconcileHistory(ctx, query("m1", "q1 edited"), "webSearch"))

	require.Len(t, messages.messages, 1)
	assert.Equal(t, "m1", messages.messages[0].MessageId)
}

func TestReconcileKeepsExistingChat(t *testing.T) {
	chats, messages := newMemChatRepo(), newMemMessageRepo()
	s := newTestSession(chats, messages)
	ctx := context.Background()

	require.NoError(t, s.reconcileHistory(ctx, query("m1", "first"), "webSearch"))
	require.NoError(t, s.reconcileHistory(ctx, query("m2", "second"), "webSearch"))

	// title stays that of the first message
	assert.Equal(t, "first", chats.chats["chat-1"].Title)
	assert.Len(t, messages.messages, 2)
}

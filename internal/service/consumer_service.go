package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"ai-answer-engine-be/internal/dto"
	"ai-answer-engine-be/internal/entity"
	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/internal/repository/contract"
	"ai-answer-engine-be/pkg/embedding"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	chunks            contract.FileChunkRepository
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	chunks contract.FileChunkRepository,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		chunks:            chunks,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedChunksMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal embed job", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads are never retriable
		return
	}

	cs.logger.Info("consumer", "embedding uploaded file", map[string]interface{}{
		"fileId": payload.FileId,
		"chunks": len(payload.Chunks),
	})

	vectors, err := cs.embeddingProvider.EmbedBatch(ctx, payload.Chunks)
	if err != nil {
		cs.logger.Error("consumer", "failed to embed file chunks", map[string]interface{}{
			"fileId": payload.FileId,
			"error":  err.Error(),
		})
		msg.Nack()
		return
	}

	entities := make([]*entity.FileChunk, len(payload.Chunks))
	for i, chunk := range payload.Chunks {
		entities[i] = &entity.FileChunk{
			Id:         uuid.New(),
			FileId:     payload.FileId,
			FileName:   payload.FileName,
			ChunkIndex: i,
			Content:    chunk,
			Embedding:  vectors[i],
			CreatedAt:  time.Now(),
		}
	}

	// A redelivered job replaces whatever the earlier attempt stored.
	if err := cs.chunks.DeleteByFileId(ctx, payload.FileId); err != nil {
		cs.logger.Error("consumer", "failed to clear stale chunks", map[string]interface{}{
			"fileId": payload.FileId,
			"error":  err.Error(),
		})
		msg.Nack()
		return
	}
	if err := cs.chunks.CreateBatch(ctx, entities); err != nil {
		cs.logger.Error("consumer", "failed to store file chunks", map[string]interface{}{
			"fileId": payload.FileId,
			"error":  err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("consumer", "file chunks stored", map[string]interface{}{
		"fileId": payload.FileId,
		"stored": len(entities),
	})
	msg.Ack()
}

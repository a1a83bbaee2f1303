package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"ai-answer-engine-be/internal/dto"
	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/pkg/rag/ingest"
	"ai-answer-engine-be/pkg/utils"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

type IUploadService interface {
	Upload(ctx context.Context, files []*multipart.FileHeader) (*dto.UploadResponse, error)
}

type uploadService struct {
	publisher    IPublisherService
	chunkSize    int
	chunkOverlap int
	logger       logger.ILogger
}

func NewUploadService(publisher IPublisherService, chunkSize, chunkOverlap int, log logger.ILogger) IUploadService {
	return &uploadService{
		publisher:    publisher,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		logger:       log,
	}
}

// Upload extracts text from each file, splits it, and queues an embedding
// job per file. The returned file ids are what clients attach to queries.
func (s *uploadService) Upload(ctx context.Context, files []*multipart.FileHeader) (*dto.UploadResponse, error) {
	res := &dto.UploadResponse{Files: make([]dto.UploadedFile, 0, len(files))}

	for _, header := range files {
		text, err := s.extractText(header)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", header.Filename, err)
		}

		chunks := utils.SplitText(text, s.chunkSize, s.chunkOverlap)
		if len(chunks) == 0 {
			s.logger.Warn("upload", "file produced no text chunks", map[string]interface{}{
				"fileName": header.Filename,
			})
			continue
		}

		fileId := uuid.NewString()
		payload, err := json.Marshal(dto.PublishEmbedChunksMessage{
			FileId:   fileId,
			FileName: header.Filename,
			Chunks:   chunks,
		})
		if err != nil {
			return nil, err
		}
		if err := s.publisher.Publish(ctx, payload); err != nil {
			return nil, err
		}

		res.Files = append(res.Files, dto.UploadedFile{
			FileName: header.Filename,
			FileId:   fileId,
		})
	}

	return res, nil
}

func (s *uploadService) extractText(header *multipart.FileHeader) (string, error) {
	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".pdf":
		return ingest.ExtractPDFText(data)
	case ".txt", ".md":
		return string(data), nil
	case ".html", ".htm":
		_, text := ingest.HTMLToText(bytes.NewReader(data))
		return text, nil
	default:
		return "", ErrUnsupportedFileType
	}
}

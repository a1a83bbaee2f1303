package implementation

import (
	"context"

	"gorm.io/gorm"

	"ai-answer-engine-be/internal/entity"
	"ai-answer-engine-be/internal/mapper"
	"ai-answer-engine-be/internal/model"
	"ai-answer-engine-be/internal/repository/contract"
	"ai-answer-engine-be/internal/repository/specification"
)

type FileChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewFileChunkRepository(db *gorm.DB) contract.FileChunkRepository {
	return &FileChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *FileChunkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FileChunkRepositoryImpl) CreateBatch(ctx context.Context, chunks []*entity.FileChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := make([]*model.FileChunk, len(chunks))
	for i, c := range chunks {
		models[i] = r.mapper.FileChunkToModel(c)
	}
	if err := r.db.WithContext(ctx).CreateInBatches(models, 100).Error; err != nil {
		return err
	}
	for i, m := range models {
		*chunks[i] = *r.mapper.FileChunkToEntity(m)
	}
	return nil
}

func (r *FileChunkRepositoryImpl) DeleteByFileId(ctx context.Context, fileId string) error {
	return r.db.WithContext(ctx).Where("file_id = ?", fileId).Delete(&model.FileChunk{}).Error
}

func (r *FileChunkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FileChunk, error) {
	var models []*model.FileChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.FileChunk, len(models))
	for i, m := range models {
		entities[i] = r.mapper.FileChunkToEntity(m)
	}
	return entities, nil
}

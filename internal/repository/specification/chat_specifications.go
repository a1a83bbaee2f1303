package specification

import "gorm.io/gorm"

type ByChatID struct {
	ChatID string
}

func (s ByChatID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_id = ?", s.ChatID)
}

type ByMessageID struct {
	MessageID string
}

func (s ByMessageID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("message_id = ?", s.MessageID)
}

type ByFileIDs struct {
	FileIDs []string
}

func (s ByFileIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("file_id IN ?", s.FileIDs)
}

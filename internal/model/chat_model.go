package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Chat struct {
	Id        string         `gorm:"type:text;primaryKey"`
	Title     string         `gorm:"type:text;not null"`
	FocusMode string         `gorm:"type:varchar(64);not null"`
	Files     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Chat) TableName() string {
	return "chats"
}

package entity

import "time"

// FileRef points at an uploaded file attached to a chat.
type FileRef struct {
	Name   string `json:"name"`
	FileId string `json:"fileId"`
}

type Chat struct {
	Id        string
	Title     string
	FocusMode string
	Files     []FileRef
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

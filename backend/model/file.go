package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File is an uploaded asset. Link is the path it is served under.
type File struct {
	PK        int64     `json:"-" gorm:"column:pk;primaryKey;autoIncrement"`
	UUID      string    `json:"uuid" gorm:"type:char(36);uniqueIndex;not null"`
	UserID    int64     `json:"-" gorm:"index;not null"`
	Filename  string    `json:"filename" gorm:"size:255"`
	Link      string    `json:"link" gorm:"uniqueIndex;size:100"`
	CreatedAt time.Time `json:"created_at"`
}

func (File) TableName() string {
	return "files"
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.UUID == "" {
		f.UUID = uuid.New().String()
	}
	return nil
}

func GetFilesByUser(userPK int64) ([]*File, error) {
	var files []*File
	err := DB.Where("user_id = ?", userPK).Order("pk DESC").Find(&files).Error
	return files, err
}

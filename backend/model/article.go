package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article is the aggregate root. The numeric pk never leaves the process;
// the public identity is the uuid column.
type Article struct {
	PK          int64          `json:"-" gorm:"column:pk;primaryKey;autoIncrement"`
	UUID        string         `json:"uuid" gorm:"type:char(36);uniqueIndex;not null"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"size:255;not null"`
	Content     string         `json:"content" gorm:"type:text;not null"`
	ThumbnailID int64          `json:"-" gorm:"not null;index"`
	AuthorID    int64          `json:"-" gorm:"not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	Thumbnail  *File             `json:"-" gorm:"foreignKey:ThumbnailID"`
	Author     *User             `json:"-" gorm:"foreignKey:AuthorID"`
	Categories []ArticleCategory `json:"-" gorm:"foreignKey:ArticleID"`
}

func (Article) TableName() string {
	return "articles"
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == "" {
		a.UUID = uuid.New().String()
	}
	return nil
}

// ArticleCategory is the join row between articles and categories. It has no
// identity of its own and is hard-deleted when the association goes away.
type ArticleCategory struct {
	ArticleID  int64 `json:"-" gorm:"primaryKey;autoIncrement:false"`
	CategoryID int64 `json:"-" gorm:"primaryKey;autoIncrement:false"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
}

func (ArticleCategory) TableName() string {
	return "articles_categories"
}

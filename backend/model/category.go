package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	PK        int64     `json:"-" gorm:"column:pk;primaryKey;autoIncrement"`
	UUID      string    `json:"uuid" gorm:"type:char(36);uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:50;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == "" {
		c.UUID = uuid.New().String()
	}
	return nil
}

func GetAllCategories() ([]*Category, error) {
	var categories []*Category
	err := DB.Order("name").Find(&categories).Error
	return categories, err
}

func GetCategoryByUUID(categoryUUID string) (*Category, error) {
	var category Category
	if err := DB.First(&category, "uuid = ?", categoryUUID).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (category *Category) Insert() error {
	return DB.Create(category).Error
}

func (category *Category) Update() error {
	return DB.Save(category).Error
}

// Delete removes the category together with any join rows referencing it.
func (category *Category) Delete() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.PK).Delete(&ArticleCategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(category).Error
	})
}

func IsCategoryNameTaken(name string) bool {
	var count int64
	err := DB.Model(&Category{}).Where("name = ?", name).Count(&count).Error
	return err == nil && count > 0
}

package store

import (
	"context"
	"errors"

	"article-hub/backend/model"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// articleQuery attaches every association the denormalized view needs.
// Soft-deleted authors simply fail to preload and surface as nil.
func (s *gormStore) articleQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Thumbnail").
		Preload("Author").
		Preload("Author.Avatar").
		Preload("Categories").
		Preload("Categories.Category")
}

func (s *gormStore) ListArticles(ctx context.Context) ([]*model.Article, error) {
	var articles []*model.Article
	if err := s.articleQuery(ctx).Order("pk").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *gormStore) FindArticleByUUID(ctx context.Context, articleUUID string) (*model.Article, error) {
	var article model.Article
	err := s.articleQuery(ctx).Where("uuid = ?", articleUUID).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (s *gormStore) FindArticleForAuthor(ctx context.Context, articleUUID string, authorPK int64) (*model.Article, error) {
	var article model.Article
	err := s.db.WithContext(ctx).
		Where("uuid = ? AND author_id = ?", articleUUID, authorPK).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (s *gormStore) FindFileByUUID(ctx context.Context, fileUUID string) (*model.File, error) {
	var file model.File
	err := s.db.WithContext(ctx).Where("uuid = ?", fileUUID).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (s *gormStore) FindFileForOwner(ctx context.Context, fileUUID string, ownerPK int64) (*model.File, error) {
	var file model.File
	err := s.db.WithContext(ctx).
		Where("uuid = ? AND user_id = ?", fileUUID, ownerPK).
		First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (s *gormStore) FindCategoriesByUUIDs(ctx context.Context, categoryUUIDs []string) ([]*model.Category, error) {
	var categories []*model.Category
	if len(categoryUUIDs) == 0 {
		return categories, nil
	}
	err := s.db.WithContext(ctx).
		Where("uuid IN ?", categoryUUIDs).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *gormStore) Begin(ctx context.Context) (Tx, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTx{tx: tx}, nil
}

type gormTx struct {
	tx *gorm.DB
}

func (t *gormTx) CreateArticle(article *model.Article) error {
	return t.tx.Create(article).Error
}

func (t *gormTx) UpdateArticleFields(articleUUID string, fields map[string]any) error {
	return t.tx.Model(&model.Article{}).Where("uuid = ?", articleUUID).Updates(fields).Error
}

func (t *gormTx) SoftDeleteArticle(articlePK int64) error {
	return t.tx.Where("pk = ?", articlePK).Delete(&model.Article{}).Error
}

func (t *gormTx) AddArticleCategory(articlePK, categoryPK int64) error {
	return t.tx.Create(&model.ArticleCategory{ArticleID: articlePK, CategoryID: categoryPK}).Error
}

func (t *gormTx) DeleteArticleCategories(articlePK int64) error {
	return t.tx.Where("article_id = ?", articlePK).Delete(&model.ArticleCategory{}).Error
}

func (t *gormTx) Commit() error {
	return t.tx.Commit().Error
}

func (t *gormTx) Rollback() error {
	return t.tx.Rollback().Error
}

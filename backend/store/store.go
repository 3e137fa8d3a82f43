// Package store abstracts the collections the article aggregate reads and
// writes, plus a transaction factory, behind one injectable interface.
package store

import (
	"context"

	"article-hub/backend/model"
)

// Store is the persistence gateway consumed by the article service. Lookup
// methods return (nil, nil) when no row matches; the caller decides what
// status that maps to.
type Store interface {
	ListArticles(ctx context.Context) ([]*model.Article, error)
	FindArticleByUUID(ctx context.Context, articleUUID string) (*model.Article, error)
	FindArticleForAuthor(ctx context.Context, articleUUID string, authorPK int64) (*model.Article, error)

	FindFileByUUID(ctx context.Context, fileUUID string) (*model.File, error)
	FindFileForOwner(ctx context.Context, fileUUID string, ownerPK int64) (*model.File, error)

	FindCategoriesByUUIDs(ctx context.Context, categoryUUIDs []string) ([]*model.Category, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx is a unit of work. Every mutation issued through it applies atomically
// on Commit or not at all after Rollback.
type Tx interface {
	CreateArticle(article *model.Article) error
	UpdateArticleFields(articleUUID string, fields map[string]any) error
	SoftDeleteArticle(articlePK int64) error
	AddArticleCategory(articlePK, categoryPK int64) error
	DeleteArticleCategories(articlePK int64) error
	Commit() error
	Rollback() error
}

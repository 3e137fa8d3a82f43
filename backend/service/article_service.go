package service

import (
	"context"

	apperrors "article-hub/backend/common/errors"
	"article-hub/backend/common/httperr"
	"article-hub/backend/model"
	"article-hub/backend/store"
)

// CreateArticleInput carries a validated create request. Thumbnail and
// Categories hold public UUIDs.
type CreateArticleInput struct {
	Title       string
	Description string
	Content     string
	Thumbnail   string
	Categories  []string
}

// UpdateArticleInput carries a validated update request. Empty strings mean
// "leave the field alone"; a nil Categories slice means the category set is
// untouched while an empty non-nil slice replaces it with nothing.
type UpdateArticleInput struct {
	Title       string
	Description string
	Content     string
	Thumbnail   string
	Categories  []string
}

// ArticleService owns the denormalized article view: a fetchable article
// always carries a resolved thumbnail UUID, author summary and category name
// list, never raw foreign keys.
type ArticleService struct {
	store store.Store
}

func NewArticleService(s store.Store) *ArticleService {
	return &ArticleService{store: s}
}

// GetArticles returns the full non-deleted set, unpaginated.
func (s *ArticleService) GetArticles(ctx context.Context) ([]ArticleView, error) {
	articles, err := s.store.ListArticles(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ArticleView, 0, len(articles))
	for _, article := range articles {
		views = append(views, toArticleView(article))
	}
	return views, nil
}

func (s *ArticleService) FindArticleByID(ctx context.Context, articleID string) (*ArticleView, error) {
	article, err := s.store.FindArticleByUUID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, httperr.NotFound(apperrors.ErrArticleNotFound, "Article is not found")
	}
	view := toArticleView(article)
	return &view, nil
}

// CreateArticle inserts the article row and one join row per resolved
// category in a single transaction. At least one category UUID must resolve;
// unmatched UUIDs beyond that are silently dropped. On success the caller
// gets a fresh read so the view is fully joined.
func (s *ArticleService) CreateArticle(ctx context.Context, authorPK int64, input CreateArticleInput) (*ArticleView, error) {
	thumbnail, err := s.store.FindFileByUUID(ctx, input.Thumbnail)
	if err != nil {
		return nil, err
	}
	if thumbnail == nil {
		return nil, httperr.NotFound(apperrors.ErrFileNotFound, "File is not found")
	}

	categories, err := s.store.FindCategoriesByUUIDs(ctx, input.Categories)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, httperr.NotFound(apperrors.ErrCategoryNotFound, "Categories is not found")
	}

	article := &model.Article{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		ThumbnailID: thumbnail.PK,
		AuthorID:    authorPK,
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	if err := tx.CreateArticle(article); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	for _, category := range categories {
		if err := tx.AddArticleCategory(article.PK, category.PK); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.FindArticleByID(ctx, article.UUID)
}

// UpdateArticle applies a sparse field update and, when Categories is
// present, replaces the whole category set — even with zero resolved
// categories. Both go through one transaction.
func (s *ArticleService) UpdateArticle(ctx context.Context, articleID string, authorPK int64, input UpdateArticleInput) (*ArticleView, error) {
	fields := map[string]any{}
	if input.Title != "" {
		fields["title"] = input.Title
	}
	if input.Description != "" {
		fields["description"] = input.Description
	}
	if input.Content != "" {
		fields["content"] = input.Content
	}

	if input.Thumbnail != "" {
		// Ownership-scoped lookup: another user's file cannot be attached
		// even if the UUID exists.
		file, err := s.store.FindFileForOwner(ctx, input.Thumbnail, authorPK)
		if err != nil {
			return nil, err
		}
		if file == nil {
			return nil, httperr.BadRequest(apperrors.ErrFileNotFound, "File is not found")
		}
		fields["thumbnail_id"] = file.PK
	}

	if len(fields) == 0 && input.Categories == nil {
		return nil, httperr.BadRequest(apperrors.ErrEmptyUpdate, "Some field is required")
	}

	article, err := s.store.FindArticleByUUID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, httperr.BadRequest(apperrors.ErrArticleNotFound, "Article is not found")
	}

	var categories []*model.Category
	if input.Categories != nil {
		categories, err = s.store.FindCategoriesByUUIDs(ctx, input.Categories)
		if err != nil {
			return nil, err
		}
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := tx.UpdateArticleFields(articleID, fields); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}
	if input.Categories != nil {
		if err := tx.DeleteArticleCategories(article.PK); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		for _, category := range categories {
			if err := tx.AddArticleCategory(article.PK, category.PK); err != nil {
				_ = tx.Rollback()
				return nil, err
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.FindArticleByID(ctx, articleID)
}

// DeleteArticle soft-deletes the article and hard-deletes its join rows.
// The lookup is scoped to the author, so "not found" and "not owned" are
// indistinguishable to the caller.
func (s *ArticleService) DeleteArticle(ctx context.Context, articleID string, authorPK int64) error {
	article, err := s.store.FindArticleForAuthor(ctx, articleID, authorPK)
	if err != nil {
		return err
	}
	if article == nil {
		return httperr.BadRequest(apperrors.ErrArticleNotFound, "Article is not found")
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	if err := tx.SoftDeleteArticle(article.PK); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.DeleteArticleCategories(article.PK); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

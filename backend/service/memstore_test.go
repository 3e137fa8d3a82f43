package service

import (
	"context"
	"time"

	"article-hub/backend/model"
	"article-hub/backend/store"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memStore is an in-memory store.Store used to test the article service
// without a database. Transactions stage closures and apply them on Commit,
// so rollback behavior is observable.
type memStore struct {
	users      map[int64]*model.User
	files      []*model.File
	categories []*model.Category
	articles   []*model.Article
	joins      []model.ArticleCategory
	nextPK     int64

	beginErr  error
	createErr error
	joinErr   error
}

func newMemStore() *memStore {
	return &memStore{users: make(map[int64]*model.User)}
}

func (m *memStore) pk() int64 {
	m.nextPK++
	return m.nextPK
}

func (m *memStore) addUser(fullName string, avatar *model.File) *model.User {
	user := &model.User{
		PK:       m.pk(),
		UUID:     uuid.New().String(),
		FullName: fullName,
		Email:    fullName + "@example.com",
	}
	if avatar != nil {
		user.DisplayPicture = &avatar.PK
	}
	m.users[user.PK] = user
	return user
}

func (m *memStore) addFile(ownerPK int64) *model.File {
	file := &model.File{
		PK:     m.pk(),
		UUID:   uuid.New().String(),
		UserID: ownerPK,
		Link:   uuid.New().String() + ".png",
	}
	m.files = append(m.files, file)
	return file
}

func (m *memStore) addCategory(name string) *model.Category {
	category := &model.Category{PK: m.pk(), UUID: uuid.New().String(), Name: name}
	m.categories = append(m.categories, category)
	return category
}

func (m *memStore) fileByPK(pk int64) *model.File {
	for _, file := range m.files {
		if file.PK == pk {
			return file
		}
	}
	return nil
}

// resolve attaches the associations a joined read would have preloaded.
func (m *memStore) resolve(article *model.Article) *model.Article {
	out := *article
	out.Thumbnail = m.fileByPK(article.ThumbnailID)
	if author, ok := m.users[article.AuthorID]; ok && !author.DeletedAt.Valid {
		authorCopy := *author
		if author.DisplayPicture != nil {
			authorCopy.Avatar = m.fileByPK(*author.DisplayPicture)
		}
		out.Author = &authorCopy
	}
	out.Categories = nil
	for _, joinRow := range m.joins {
		if joinRow.ArticleID != article.PK {
			continue
		}
		resolved := joinRow
		for _, category := range m.categories {
			if category.PK == joinRow.CategoryID {
				resolved.Category = category
			}
		}
		out.Categories = append(out.Categories, resolved)
	}
	return &out
}

func (m *memStore) ListArticles(ctx context.Context) ([]*model.Article, error) {
	var out []*model.Article
	for _, article := range m.articles {
		if article.DeletedAt.Valid {
			continue
		}
		out = append(out, m.resolve(article))
	}
	return out, nil
}

func (m *memStore) FindArticleByUUID(ctx context.Context, articleUUID string) (*model.Article, error) {
	for _, article := range m.articles {
		if article.UUID == articleUUID && !article.DeletedAt.Valid {
			return m.resolve(article), nil
		}
	}
	return nil, nil
}

func (m *memStore) FindArticleForAuthor(ctx context.Context, articleUUID string, authorPK int64) (*model.Article, error) {
	for _, article := range m.articles {
		if article.UUID == articleUUID && article.AuthorID == authorPK && !article.DeletedAt.Valid {
			out := *article
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindFileByUUID(ctx context.Context, fileUUID string) (*model.File, error) {
	for _, file := range m.files {
		if file.UUID == fileUUID {
			return file, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindFileForOwner(ctx context.Context, fileUUID string, ownerPK int64) (*model.File, error) {
	for _, file := range m.files {
		if file.UUID == fileUUID && file.UserID == ownerPK {
			return file, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindCategoriesByUUIDs(ctx context.Context, categoryUUIDs []string) ([]*model.Category, error) {
	wanted := make(map[string]bool, len(categoryUUIDs))
	for _, categoryUUID := range categoryUUIDs {
		wanted[categoryUUID] = true
	}
	var out []*model.Category
	for _, category := range m.categories {
		if wanted[category.UUID] {
			out = append(out, category)
		}
	}
	return out, nil
}

func (m *memStore) Begin(ctx context.Context) (store.Tx, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	return &memTx{s: m}, nil
}

type memTx struct {
	s      *memStore
	staged []func()
}

func (t *memTx) CreateArticle(article *model.Article) error {
	if t.s.createErr != nil {
		return t.s.createErr
	}
	article.PK = t.s.pk()
	if article.UUID == "" {
		article.UUID = uuid.New().String()
	}
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	row := *article
	t.staged = append(t.staged, func() {
		t.s.articles = append(t.s.articles, &row)
	})
	return nil
}

func (t *memTx) UpdateArticleFields(articleUUID string, fields map[string]any) error {
	t.staged = append(t.staged, func() {
		for _, article := range t.s.articles {
			if article.UUID != articleUUID {
				continue
			}
			if title, ok := fields["title"].(string); ok {
				article.Title = title
			}
			if description, ok := fields["description"].(string); ok {
				article.Description = description
			}
			if content, ok := fields["content"].(string); ok {
				article.Content = content
			}
			if thumbnailID, ok := fields["thumbnail_id"].(int64); ok {
				article.ThumbnailID = thumbnailID
			}
			article.UpdatedAt = time.Now()
		}
	})
	return nil
}

func (t *memTx) SoftDeleteArticle(articlePK int64) error {
	t.staged = append(t.staged, func() {
		for _, article := range t.s.articles {
			if article.PK == articlePK {
				article.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
			}
		}
	})
	return nil
}

func (t *memTx) AddArticleCategory(articlePK, categoryPK int64) error {
	if t.s.joinErr != nil {
		return t.s.joinErr
	}
	t.staged = append(t.staged, func() {
		t.s.joins = append(t.s.joins, model.ArticleCategory{ArticleID: articlePK, CategoryID: categoryPK})
	})
	return nil
}

func (t *memTx) DeleteArticleCategories(articlePK int64) error {
	t.staged = append(t.staged, func() {
		kept := t.s.joins[:0]
		for _, joinRow := range t.s.joins {
			if joinRow.ArticleID != articlePK {
				kept = append(kept, joinRow)
			}
		}
		t.s.joins = kept
	})
	return nil
}

func (t *memTx) Commit() error {
	for _, apply := range t.staged {
		apply()
	}
	t.staged = nil
	return nil
}

func (t *memTx) Rollback() error {
	t.staged = nil
	return nil
}

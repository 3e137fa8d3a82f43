package service

import (
	"testing"
	"time"

	"article-hub/backend/model"

	"github.com/stretchr/testify/assert"
)

func TestToArticleView_FlattensAssociations(t *testing.T) {
	avatar := &model.File{PK: 1, UUID: "avatar-uuid"}
	thumbnail := &model.File{PK: 2, UUID: "thumb-uuid"}
	authorAvatarPK := avatar.PK
	author := &model.User{
		PK:             3,
		UUID:           "author-uuid",
		FullName:       "Jane Writer",
		DisplayPicture: &authorAvatarPK,
		Avatar:         avatar,
	}
	article := &model.Article{
		PK:          4,
		UUID:        "article-uuid",
		Title:       "Title",
		Description: "Description",
		Content:     "Content",
		ThumbnailID: thumbnail.PK,
		AuthorID:    author.PK,
		Thumbnail:   thumbnail,
		Author:      author,
		Categories: []model.ArticleCategory{
			{ArticleID: 4, CategoryID: 5, Category: &model.Category{PK: 5, UUID: "c1", Name: "Go"}},
			{ArticleID: 4, CategoryID: 6, Category: &model.Category{PK: 6, UUID: "c2", Name: "Web"}},
		},
	}

	view := toArticleView(article)

	assert.Equal(t, "article-uuid", view.UUID)
	assert.Equal(t, "thumb-uuid", view.Thumbnail)
	assert.Equal(t, "author-uuid", view.Author.UUID)
	assert.Equal(t, "Jane Writer", view.Author.FullName)
	assert.Equal(t, "avatar-uuid", view.Author.Avatar)
	assert.Equal(t, []string{"Go", "Web"}, view.Categories)
}

func TestToArticleView_FormatsTimestamps(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)
	article := &model.Article{
		UUID:      "article-uuid",
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}

	view := toArticleView(article)

	assert.Equal(t, "2026-03-14T09:26:53.589Z", view.CreatedAt)
	assert.Equal(t, "2026-03-14T10:26:53.589Z", view.UpdatedAt)
}

func TestToArticleView_MissingAssociationsStayEmpty(t *testing.T) {
	article := &model.Article{UUID: "article-uuid", Title: "Title"}

	view := toArticleView(article)

	assert.Empty(t, view.Thumbnail)
	assert.Empty(t, view.Author.UUID)
	assert.Empty(t, view.Author.Avatar)
	assert.NotNil(t, view.Categories)
	assert.Empty(t, view.Categories)
}

func TestToArticleView_SkipsUnresolvedJoinRows(t *testing.T) {
	article := &model.Article{
		UUID: "article-uuid",
		Categories: []model.ArticleCategory{
			{ArticleID: 1, CategoryID: 2, Category: &model.Category{PK: 2, Name: "Go"}},
			{ArticleID: 1, CategoryID: 3}, // category row missing
		},
	}

	view := toArticleView(article)

	assert.Equal(t, []string{"Go"}, view.Categories)
}

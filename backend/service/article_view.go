package service

import (
	"article-hub/backend/common"
	"article-hub/backend/model"
)

// AuthorView is the nested author summary inside an article view.
type AuthorView struct {
	UUID     string `json:"uuid"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar,omitempty"`
}

// ArticleView is the public, denormalized shape of an article: foreign keys
// are replaced with UUIDs and the join rows collapse into a list of category
// names. Surrogate keys never appear here.
type ArticleView struct {
	UUID        string     `json:"uuid"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Thumbnail   string     `json:"thumbnail"`
	Author      AuthorView `json:"author"`
	Categories  []string   `json:"categories"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// toArticleView flattens a fully joined article record. Category order
// follows the order the join rows were read in. Associations that failed to
// resolve (soft-deleted author, missing file) leave their field empty rather
// than failing the whole view.
func toArticleView(article *model.Article) ArticleView {
	view := ArticleView{
		UUID:        article.UUID,
		Title:       article.Title,
		Description: article.Description,
		Content:     article.Content,
		Categories:  make([]string, 0, len(article.Categories)),
		CreatedAt:   common.FormatTime(article.CreatedAt),
		UpdatedAt:   common.FormatTime(article.UpdatedAt),
	}
	if article.Thumbnail != nil {
		view.Thumbnail = article.Thumbnail.UUID
	}
	if article.Author != nil {
		view.Author = AuthorView{
			UUID:     article.Author.UUID,
			FullName: article.Author.FullName,
		}
		if article.Author.Avatar != nil {
			view.Author.Avatar = article.Author.Avatar.UUID
		}
	}
	for _, joinRow := range article.Categories {
		if joinRow.Category != nil {
			view.Categories = append(view.Categories, joinRow.Category.Name)
		}
	}
	return view
}
